// @title           KilimoPesa API
// @version         1.0
// @description     Marketplace backend for agricultural goods and services.
// @contact.name    KilimoPesa
// @contact.email   support@kilimopesa.co.ke
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "kilimopesa_backend/internal/app"

func main() {
	app.Run()
}
