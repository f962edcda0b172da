package main

import (
	"errors"
	"log"
	"net/http"

	"culturebites/src/db"
	"culturebites/src/models"
	"culturebites/src/types"
	"culturebites/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func seatRequestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/seat-requests", func(ctx *gin.Context) {
			var body types.CreateSeatRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			name := ctx.GetString("name")
			request, err := utils.CreateSeatRequest(db.GetDb(), userId, name, &body)
			if err != nil {
				log.Printf("Error creating seat request for event %d: %s\n", body.EventID, err.Error())
				switch {
				case errors.Is(err, utils.ErrEventNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, utils.ErrSoldOut), errors.Is(err, utils.ErrAlreadyRequested):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": request})
		}).
		GET("/seat-requests", func(ctx *gin.Context) {
			var filters types.SeatRequestQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var requests []models.SeatRequest
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				if filters.Hosting {
					var host models.Host
					if err := tx.Where(&models.Host{UserID: userId}).First(&host).Error; err != nil {
						return err
					}
					return tx.
						Joins("JOIN events ON events.id = seat_requests.event_id").
						Where("events.host_id = ?", host.ID).
						Preload("Event").
						Order("seat_requests.created_at desc").
						Find(&requests).
						Error
				}
				return tx.
					Where(&models.SeatRequest{GuestID: userId}).
					Preload("Event").
					Order("created_at desc").
					Find(&requests).
					Error
			})
			if err != nil {
				log.Printf("Error retrieving seat requests: %s\n", err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "host profile not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": requests, "count": len(requests)})
		}).
		PUT("/seat-requests/:id/approve", func(ctx *gin.Context) {
			resolveSeatRequest(ctx, utils.ApproveSeatRequest)
		}).
		PUT("/seat-requests/:id/waitlist", func(ctx *gin.Context) {
			resolveSeatRequest(ctx, utils.WaitlistSeatRequest)
		}).
		PUT("/seat-requests/:id/decline", func(ctx *gin.Context) {
			resolveSeatRequest(ctx, utils.DeclineSeatRequest)
		})
	return g
}

func resolveSeatRequest(ctx *gin.Context, resolve func(*gorm.DB, uint, uint) (*models.SeatRequest, error)) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userId := ctx.GetUint("id")
	request, err := resolve(db.GetDb(), userId, params.ID)
	if err != nil {
		log.Printf("Error resolving seat request %d: %s\n", params.ID, err.Error())
		switch {
		case errors.Is(err, utils.ErrRequestNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, utils.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": request})
}
