package main

import "salescrm/internal/app"

// @title           SalesCRM Analytics API
// @version         1.0
// @description     Analytics and reporting endpoints over the sales CRM data.
// @BasePath        /
func main() {
	app.Run()
}
