package main

import (
	_ "auditqc/docs"
	"auditqc/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Audit QC Review API
// @version         1.0
// @description     Coordinates audit QC reviews against the backend. Submits and polls review jobs, edits step comments and findings, and serves cached review detail and directory listings.

// @contact.name   API Support
// @contact.email  support@auditqc.local

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in cookie
// @name qc_session
// @description Session cookie carrying the bearer credential forwarded to the QC backend.

func main() {
	routes.Run()
}
