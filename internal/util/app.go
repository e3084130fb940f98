package util

func GetAppName() string {
	return "Northwind Labs"
}

func GetAppSlug() string {
	return "northwind"
}

func GetAppLogoURL(frontURL string) string {
	return frontURL + "/logo.png"
}
