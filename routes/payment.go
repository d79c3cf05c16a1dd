package routes

import (
	"log"
	"sync"

	"valentine-surprise-server/services"
	"valentine-surprise-server/utils"

	"github.com/kataras/iris/v12"
)

// Initialized lazily so godotenv has loaded the Razorpay keys by the time
// the first order request arrives; iris serves requests concurrently, hence
// the Once.
var (
	checkout     *services.CheckoutService
	checkoutOnce sync.Once
)

func checkoutService() *services.CheckoutService {
	checkoutOnce.Do(func() {
		checkout = services.NewCheckoutService()
	})
	return checkout
}

// CreateOrder registers a fixed-price Razorpay order and returns what the
// checkout modal needs to open. The price is a server-side constant; the
// client cannot pick its own amount.
func CreateOrder(ctx iris.Context) {
	svc := checkoutService()

	order, err := svc.CreateOrder(utils.PriceInPaise(), "INR", utils.NewSurpriseID())
	if err != nil {
		log.Printf("ERROR: failed to create razorpay order: %v", err)
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"error": "Failed to create order"})
		return
	}

	ctx.JSON(iris.Map{
		"orderId":  order["id"],
		"amount":   order["amount"],
		"currency": order["currency"],
		"keyId":    svc.KeyID(),
	})
}
