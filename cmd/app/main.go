package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gemquest/cmd/fx/chore_fx"
	"gemquest/cmd/fx/db_fx"
	"gemquest/cmd/fx/payment_fx"
	"gemquest/cmd/fx/suggestion_fx"
	"gemquest/cmd/fx/user_fx"
	"gemquest/internal/api/controllers"
	"gemquest/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		chore_fx.Module,
		payment_fx.Module,
		suggestion_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	userController *controllers.UserController,
	choreController *controllers.ChoreController,
	paymentController *controllers.PaymentController,
	suggestionController *controllers.SuggestionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, userController, choreController, paymentController, suggestionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	choreController *controllers.ChoreController,
	paymentController *controllers.PaymentController,
	suggestionController *controllers.SuggestionController) {

	userGroup := r.Group("/user")
	userGroup.POST("", userController.Register)
	userGroup.POST("/login", userController.Login)
	userGroup.POST("/refresh-token", userController.RefreshToken)
	userGroup.POST("/logout", userController.Logout)

	userAuthed := userGroup.Group("")
	userAuthed.Use(middleware.JWTAuthMiddleware())
	userAuthed.PUT("/token-config", userController.TokenConfig)
	userAuthed.PUT("/family-setup", userController.FamilySetup)
	userAuthed.POST("/validate-pin", userController.ValidatePin)
	userAuthed.GET("/family/:userId", userController.GetFamily)
	userAuthed.PUT("/child-gems", userController.UpdateChildGems)

	choreGroup := r.Group("/chore")
	choreGroup.Use(middleware.JWTAuthMiddleware())
	choreGroup.POST("", choreController.CreateChore)
	choreGroup.GET("/child/:childId", choreController.GetChoresByChild)
	choreGroup.GET("/parent/:parentId", choreController.GetChoresByParent)
	choreGroup.PUT("/:id", choreController.UpdateChore)
	choreGroup.DELETE("/:id", choreController.DeleteChore)

	paymentGroup := r.Group("/payment")
	paymentGroup.Use(middleware.JWTAuthMiddleware())
	paymentGroup.POST("/pull-funds", paymentController.PullFunds)
	paymentGroup.GET("/methods/:userId", paymentController.ListPaymentMethods)
	paymentGroup.GET("/transactions/:userId", paymentController.ListTransactions)
	paymentGroup.GET("/transaction/:transactionId", paymentController.GetTransaction)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.JWTAuthMiddleware())
	apiGroup.POST("/trigger-payout", paymentController.TriggerPayout)
	apiGroup.POST("/payment-methods", paymentController.CreatePaymentMethod)
	apiGroup.GET("/payment-methods/user/:userId", paymentController.ListPaymentMethods)
	apiGroup.PUT("/payment-methods/:id/set-default", paymentController.SetDefaultPaymentMethod)
	apiGroup.DELETE("/payment-methods/:id", paymentController.DeletePaymentMethod)
	apiGroup.POST("/suggestions", suggestionController.Suggest)
	apiGroup.POST("/suggestions/contextual", suggestionController.SuggestContextual)
}
