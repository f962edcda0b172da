package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"culturebites/src/config"
	"culturebites/src/db"
	"culturebites/src/models"
	"culturebites/src/types"
	"culturebites/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func eventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/events", func(ctx *gin.Context) {
			var body types.CreateEventRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			date, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var event models.Event
			err = db.Transaction(func(tx *gorm.DB) error {
				var host models.Host
				if err := tx.Where(&models.Host{UserID: userId}).First(&host).Error; err != nil {
					return err
				}
				event = models.Event{
					Title:      body.Title,
					Slug:       slug.Make(body.Title),
					Cuisine:    body.Cuisine,
					HostID:     host.ID,
					Date:       date,
					StartTime:  body.StartTime,
					EndTime:    body.EndTime,
					Location:   body.Location,
					Images:     body.Images,
					SeatsTotal: body.Seats,
					SeatsLeft:  body.Seats,
					Status:     types.EVENT_UPCOMING,
				}
				return tx.Create(&event).Error
			})
			if err != nil {
				log.Printf("Error creating event: %s\n", err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "host profile not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": event})
		}).
		GET("/events/hosting", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var events []models.Event
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var host models.Host
				if err := tx.Where(&models.Host{UserID: userId}).First(&host).Error; err != nil {
					return err
				}
				return tx.
					Where(&models.Event{HostID: host.ID}).
					Preload("Cook").
					Order("date asc").
					Find(&events).
					Error
			})
			if err != nil {
				log.Printf("Error retrieving hosted events: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		PUT("/events/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			event, err := utils.CancelEvent(db.GetDb(), userId, params.ID)
			if err != nil {
				log.Printf("Error canceling event %d: %s\n", params.ID, err.Error())
				switch {
				case errors.Is(err, utils.ErrEventNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				case errors.Is(err, utils.ErrInvalidTransition):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		})
	return g
}

func publicEventHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/events", func(ctx *gin.Context) {
			events, err := utils.ListVisibleEvents(db.GetDb(), time.Now())
			if err != nil {
				log.Printf("Error retrieving events: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": events, "count": len(events)})
		}).
		GET("/events/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			event, err := utils.GetVisibleEvent(db.GetDb(), params.ID, time.Now())
			if err != nil {
				log.Printf("Error finding event %d: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusNotFound, gin.H{"error": "event does not exist"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": event})
		})
	return g
}
