package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aboutme/shared"
)

// crudService is what every entity service exposes; C and U are its create
// and update DTO types. The HTTP surface is identical across entities, so
// the routes are mounted once here.
type crudService[C any, U any] interface {
	GetByID(id uuid.UUID) *shared.Response
	GetAll(pageNumber, pageSize int, isPaginated bool) *shared.Response
	SearchByName(name string, pageNumber, pageSize int, isPaginated bool) *shared.Response
	Create(dto C) *shared.Response
	Update(id uuid.UUID, dto U) *shared.Response
	Delete(id uuid.UUID) *shared.Response
}

func mountCrud[C, U any](rg *gin.RouterGroup, svc crudService[C, U]) {
	rg.GET("/all", func(c *gin.Context) {
		pageNumber, pageSize, isPaginated := pageParams(c)
		respond(c, svc.GetAll(pageNumber, pageSize, isPaginated))
	})
	rg.GET("/search", func(c *gin.Context) {
		pageNumber, pageSize, isPaginated := pageParams(c)
		respond(c, svc.SearchByName(c.Query("name"), pageNumber, pageSize, isPaginated))
	})
	rg.GET("/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		respond(c, svc.GetByID(id))
	})
	rg.POST("", func(c *gin.Context) {
		var dto C
		if err := c.ShouldBindJSON(&dto); err != nil {
			respond(c, shared.BadRequest(err.Error()))
			return
		}
		respond(c, svc.Create(dto))
	})
	rg.PUT("/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var dto U
		if err := c.ShouldBindJSON(&dto); err != nil {
			respond(c, shared.BadRequest(err.Error()))
			return
		}
		respond(c, svc.Update(id, dto))
	})
	rg.DELETE("/:id", func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		respond(c, svc.Delete(id))
	})
}

func respond(c *gin.Context, resp *shared.Response) {
	c.JSON(resp.StatusCode, resp)
}

// pageParams reads the pagination query params with the conventional
// defaults (page 1, size 10, not paginated). Out-of-range values are left to
// the service to reject.
func pageParams(c *gin.Context) (pageNumber, pageSize int, isPaginated bool) {
	pageNumber, pageSize, isPaginated = 1, 10, false
	if v, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1")); err == nil {
		pageNumber = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("pageSize", "10")); err == nil {
		pageSize = v
	}
	if v, err := strconv.ParseBool(c.DefaultQuery("isPaginated", "false")); err == nil {
		isPaginated = v
	}
	return
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond(c, shared.BadRequest("Invalid id."))
		return uuid.Nil, false
	}
	return id, true
}
