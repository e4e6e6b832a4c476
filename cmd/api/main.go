package main

import (
	_ "staffdesk/docs"
	"staffdesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Staff Desk API
// @version         1.0
// @description     Commission quote pipeline (issue, decision, claim, payment, invoice, completion) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
