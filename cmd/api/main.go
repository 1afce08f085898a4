package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"

	"github.com/pedrolmns/big-lambda/internal/config"
	"github.com/pedrolmns/big-lambda/internal/container"
	"github.com/pedrolmns/big-lambda/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		JobHandler:       c.JobHandler,
		ClientHandler:    c.ClientHandler,
		DraftHandler:     c.DraftHandler,
		SettingsHandler:  c.SettingsHandler,
		CalendarHandler:  c.CalendarHandler,
		DashboardHandler: c.DashboardHandler,
		BackupHandler:    c.BackupHandler,
		AssistantHandler: c.AssistantHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler.(*chi.Mux))
		lambda.Start(func(req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.Proxy(req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger().WithError(err).Fatal("HTTP server stopped")
	}
}
