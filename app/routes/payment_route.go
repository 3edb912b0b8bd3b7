package routes

import (
	"github.com/Shihab066/learning-server/app/controllers"
	appmid "github.com/Shihab066/learning-server/app/middleware"
	"github.com/Shihab066/learning-server/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func PaymentRoute(r *gin.Engine, ctrl *controllers.PaymentController, users appmid.UserGetter) {
	payment := r.Group("/payment")
	payment.Use(middleware.VerifyToken(), appmid.VerifyActiveUser(users))

	payment.GET("/retrieve-checkout-session/:token/:sessionId", ctrl.RetrieveCheckoutSession)
	payment.GET("/get/:studentId", ctrl.GetPayments)
	payment.POST("/create-checkout-session", ctrl.CreateCheckoutSession)
	payment.POST("/expire-session", ctrl.ExpireSession)
}
