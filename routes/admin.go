package routes

import (
	"os"
	"strconv"
	"time"

	"valentine-surprise-server/models"
	"valentine-surprise-server/storage"
	"valentine-surprise-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type adminLoginInput struct {
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the password against the bcrypt hash held in
// ADMIN_PASSWORD_HASH and issues an access token for the dashboard.
func AdminLogin(ctx iris.Context) {
	var input adminLoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		utils.JSONError(ctx, iris.StatusServiceUnavailable, "admin_disabled", "admin access is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		utils.JSONError(ctx, iris.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	token, err := utils.CreateAdminToken()
	if err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "token_error", "could not create access token")
		return
	}

	ctx.JSON(iris.Map{"accessToken": token})
}

// AdminListSurprises returns stored surprises, newest first, paginated.
func AdminListSurprises(ctx iris.Context) {
	page, _ := strconv.Atoi(ctx.URLParamDefault("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(ctx.URLParamDefault("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	storage.DB.Model(&models.Surprise{}).Count(&total)

	var surprises []models.Surprise
	if err := storage.DB.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&surprises).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "db_error", "failed to list surprises")
		return
	}

	utils.JSONPage(ctx, surprises, page, perPage, total)
}

// AdminStats reports totals for the dashboard header.
func AdminStats(ctx iris.Context) {
	var total int64
	storage.DB.Model(&models.Surprise{}).Count(&total)

	var today int64
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	storage.DB.Model(&models.Surprise{}).Where("created_at >= ?", midnight).Count(&today)

	ctx.JSON(iris.Map{
		"totalSurprises": total,
		"createdToday":   today,
		"revenueINR":     total * utils.PriceINR(),
	})
}
