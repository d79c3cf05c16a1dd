package main

import (
	"log"
	"os"

	"valentine-surprise-server/routes"
	"valentine-surprise-server/storage"
	"valentine-surprise-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeCloudinary()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the Vite frontend (http://localhost:5173 in development)
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	api := app.Party("/api")
	{
		// Any, not Post: the handler owns the 405 contract for other verbs.
		api.Any("/surprises", routes.CreateSurprise)
		api.Get("/surprises/{id}", routes.GetSurprise)
		api.Post("/payments/order", routes.CreateOrder)
		api.Post("/upload", routes.UploadImage)
	}

	admin := app.Party("/api/admin")
	{
		admin.Post("/login", routes.AdminLogin)

		protected := admin.Party("/", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
		protected.Get("/surprises", routes.AdminListSurprises)
		protected.Get("/stats", routes.AdminStats)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Println("🚀 Server starting on port", port)
	app.Listen(":" + port)
}
