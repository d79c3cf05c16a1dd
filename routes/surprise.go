package routes

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"valentine-surprise-server/models"
	"valentine-surprise-server/services"
	"valentine-surprise-server/storage"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

var bgContext = context.Background()

const surpriseCacheTTL = time.Hour

// CreateSurpriseInput mirrors the payload the wizard posts after payment
// success. Reasons and timeline ride along as flexible extras; the razorpay
// fields are opaque confirmation ids.
type CreateSurpriseInput struct {
	SurpriseID        string                 `json:"surpriseId"`
	SenderName        string                 `json:"senderName"`
	ReceiverName      string                 `json:"receiverName"`
	Message           string                 `json:"message"`
	Images            []string               `json:"images"`
	AudioURL          *string                `json:"audioUrl"`
	Reasons           []string               `json:"reasons"`
	Timeline          []models.TimelineEntry `json:"timeline"`
	RazorpayPaymentID string                 `json:"razorpayPaymentId"`
	RazorpayOrderID   string                 `json:"razorpayOrderId"`
	RazorpaySignature string                 `json:"razorpaySignature"`
}

// CreateSurprise validates the submitted payload and writes one immutable
// surprise record. Registered for every verb on its path so non-POST
// requests get the 405 body the client expects.
func CreateSurprise(ctx iris.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: create surprise panicked: %v", r)
			ctx.StatusCode(iris.StatusInternalServerError)
			ctx.JSON(iris.Map{"success": false, "error": "Internal server error"})
		}
	}()

	if ctx.Method() != iris.MethodPost {
		ctx.StatusCode(iris.StatusMethodNotAllowed)
		ctx.JSON(iris.Map{"error": "Method not allowed"})
		return
	}

	var input CreateSurpriseInput
	if err := ctx.ReadJSON(&input); err != nil {
		// An unparseable body lands on the generic 500, same as any other
		// unexpected failure. Internals never reach the caller.
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"success": false, "error": "Internal server error"})
		return
	}

	// A present-but-empty images array is accepted; only an absent field
	// counts as missing.
	if input.SurpriseID == "" || input.SenderName == "" || input.ReceiverName == "" ||
		input.Message == "" || input.Images == nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"error": "Missing required fields"})
		return
	}

	// The shipped client flow trusts the payment confirmation as-is.
	// Enable RAZORPAY_VERIFY_SIGNATURE in production to check the HMAC
	// before persisting.
	if os.Getenv("RAZORPAY_VERIFY_SIGNATURE") == "true" {
		secret := os.Getenv("RAZORPAY_KEY_SECRET")
		if !services.VerifyRazorpaySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, secret) {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{"success": false, "error": "Invalid payment signature"})
			return
		}
	}

	reasons := input.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	timeline := input.Timeline
	if timeline == nil {
		timeline = []models.TimelineEntry{}
	}

	imagesJSON, _ := json.Marshal(input.Images)
	extrasJSON, _ := json.Marshal(models.SurpriseExtras{Reasons: reasons, Timeline: timeline})

	surprise := models.Surprise{
		ID:           input.SurpriseID,
		SenderName:   input.SenderName,
		ReceiverName: input.ReceiverName,
		Message:      input.Message,
		Images:       string(imagesJSON),
		AudioURL:     input.AudioURL,
		ExtraData:    datatypes.JSON(extrasJSON),
		CreatedAt:    time.Now(),
	}

	if result := storage.DB.Create(&surprise); result.Error != nil {
		log.Printf("ERROR: failed to save surprise %s: %v", input.SurpriseID, result.Error)
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"success": false, "error": "Failed to save surprise data"})
		return
	}

	ctx.JSON(iris.Map{"success": true, "surpriseId": surprise.ID})
}

// surpriseOutput is the viewer-facing record shape, with the JSON-string
// columns expanded back into arrays.
type surpriseOutput struct {
	SurpriseID   string                `json:"surpriseId"`
	SenderName   string                `json:"senderName"`
	ReceiverName string                `json:"receiverName"`
	Message      string                `json:"message"`
	Images       []string              `json:"images"`
	AudioURL     *string               `json:"audioUrl"`
	ExtraData    models.SurpriseExtras `json:"extraData"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// GetSurprise fetches one record for the shareable viewer page. Reads go
// through Redis when it is configured; records never change after insert so
// cached copies cannot go stale.
func GetSurprise(ctx iris.Context) {
	id := ctx.Params().Get("id")
	cacheKey := "surprise:" + id

	if storage.Redis != nil {
		if cached, err := storage.Redis.Get(bgContext, cacheKey).Result(); err == nil {
			ctx.ContentType("application/json")
			ctx.WriteString(cached)
			return
		}
	}

	var surprise models.Surprise
	if err := storage.DB.First(&surprise, "id = ?", id).Error; err != nil {
		ctx.StatusCode(iris.StatusNotFound)
		ctx.JSON(iris.Map{"error": "Surprise not found"})
		return
	}

	out := surpriseOutput{
		SurpriseID:   surprise.ID,
		SenderName:   surprise.SenderName,
		ReceiverName: surprise.ReceiverName,
		Message:      surprise.Message,
		Images:       []string{},
		AudioURL:     surprise.AudioURL,
		ExtraData:    models.SurpriseExtras{Reasons: []string{}, Timeline: []models.TimelineEntry{}},
		CreatedAt:    surprise.CreatedAt,
	}
	if surprise.Images != "" {
		json.Unmarshal([]byte(surprise.Images), &out.Images)
	}
	if len(surprise.ExtraData) > 0 {
		json.Unmarshal(surprise.ExtraData, &out.ExtraData)
	}

	if storage.Redis != nil {
		if body, err := json.Marshal(out); err == nil {
			storage.Redis.Set(bgContext, cacheKey, string(body), surpriseCacheTTL)
		}
	}

	ctx.JSON(out)
}
