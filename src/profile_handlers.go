package main

import (
	"log"
	"net/http"

	"culturebites/src/db"
	"culturebites/src/models"
	"culturebites/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func profileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users/me", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var user models.User
			db := db.GetDb()
			if err := db.First(&user, userId).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		POST("/hosts", func(ctx *gin.Context) {
			var body types.CreateHostRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var host models.Host
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.FirstOrCreate(&host, &models.Host{UserID: userId}).Error
				if err != nil {
					return err
				}
				err = tx.Model(&host).Updates(&models.Host{
					Name:       body.Name,
					SpaceTitle: body.SpaceTitle,
					SpaceDesc:  body.SpaceDesc,
					Location:   body.Location,
					Capacity:   body.Capacity,
					Photos:     body.Photos,
				}).Error
				if err != nil {
					return err
				}
				return tx.Model(&models.User{}).
					Where("id = ?", userId).
					Update("role", types.ROLE_HOST).
					Error
			})
			if err != nil {
				log.Printf("Error saving host profile: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": host})
		}).
		POST("/cooks", func(ctx *gin.Context) {
			var body types.CreateCookRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			var cook models.Cook
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				err := tx.FirstOrCreate(&cook, &models.Cook{UserID: userId}).Error
				if err != nil {
					return err
				}
				err = tx.Model(&cook).Updates(&models.Cook{
					Name:          body.Name,
					OriginCountry: body.OriginCountry,
					Specialties:   body.Specialties,
					Story:         body.Story,
					CuisineImages: body.CuisineImages,
				}).Error
				if err != nil {
					return err
				}
				return tx.Model(&models.User{}).
					Where("id = ?", userId).
					Update("role", types.ROLE_COOK).
					Error
			})
			if err != nil {
				log.Printf("Error saving cook profile: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": cook})
		})
	return g
}

func publicProfileHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hosts", func(ctx *gin.Context) {
			var hosts []models.Host
			db := db.GetDb()
			if err := db.Order("created_at desc").Find(&hosts).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hosts, "count": len(hosts)})
		}).
		GET("/hosts/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var host models.Host
			db := db.GetDb()
			if err := db.Preload("Events").First(&host, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "host not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": host})
		}).
		GET("/cooks", func(ctx *gin.Context) {
			var cooks []models.Cook
			db := db.GetDb()
			if err := db.Order("created_at desc").Find(&cooks).Error; err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": cooks, "count": len(cooks)})
		}).
		GET("/cooks/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var cook models.Cook
			db := db.GetDb()
			if err := db.First(&cook, params.ID).Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "cook not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": cook})
		})
	return g
}
