package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"culturebites/src/db"
	"culturebites/src/lib"
	"culturebites/src/types"
	"culturebites/src/utils"

	"github.com/gin-gonic/gin"
)

func recommendationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/recommend", func(ctx *gin.Context) {
			var body types.RecommendRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cacheKey := fmt.Sprintf("recommend:%s", strings.ToLower(strings.Join(body.Interests, ",")))
			if cached := lib.CacheGet(ctx.Request.Context(), cacheKey); cached != "" {
				recs := []types.Recommendation{}
				if err := json.Unmarshal([]byte(cached), &recs); err == nil {
					ctx.JSON(http.StatusOK, gin.H{"data": recs, "count": len(recs)})
					return
				}
			}
			now := time.Now()
			events, err := utils.ListVisibleEvents(db.GetDb(), now)
			if err != nil {
				log.Printf("Error retrieving events for recommendations: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			recs, err := lib.FetchRecommendations(ctx.Request.Context(), body.Interests, events)
			if err != nil {
				log.Printf("Falling back to local ranking: %s\n", err.Error())
				recs = utils.RankEvents(body.Interests, events, now)
			}
			if raw, err := json.Marshal(recs); err == nil {
				lib.CacheSet(ctx.Request.Context(), cacheKey, string(raw), time.Minute)
			}
			ctx.JSON(http.StatusOK, gin.H{"data": recs, "count": len(recs)})
		}).
		GET("/photos", func(ctx *gin.Context) {
			query := ctx.DefaultQuery("query", "dinner party")
			photos := lib.SearchPhotos(ctx.Request.Context(), query, 6)
			ctx.JSON(http.StatusOK, gin.H{"data": photos, "count": len(photos)})
		})
	return g
}
