package main

import "taxOffice/cmd/app"

// @title           Tax Office Portal API
// @version         1.0
// @description     Client portal for a tax preparation office with real-time notifications.
func main() {
	app.GetApp().LetsGo()
}
