package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook"
	"github.com/PIG208/Airbook/api/middleware"
)

type Api struct {
	airbook *airbook.Airbook
	router  *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router

	router.POST("/register/:register_type", a.Register)
	router.POST("/login/:login_type", a.Login)
	router.POST("/logout", a.Logout)
	router.GET("/session-fetch", a.SessionFetch)

	router.POST("/search-public/:filter", a.SearchPublic)
	router.POST("/search/:filter", middleware.RequireSession(), a.Search)

	router.POST("/ticket_price", a.TicketPrice)
	router.POST("/ticket_purchase", middleware.RequireSession(), a.TicketPurchase)

	router.POST("/create_flight", middleware.RequireStaff(), a.CreateFlight)
	router.POST("/create_airport", middleware.RequireStaff(), a.CreateAirport)
	router.POST("/create_airplane", middleware.RequireStaff(), a.CreateAirplane)

	return a.router
}

func NewAPI(b *airbook.Airbook) *Api {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.SessionMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	return &Api{airbook: b, router: r}
}
