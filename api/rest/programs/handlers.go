package programs

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/errors"
	progs "codeberg.org/path2prevention/server/path2prevention/programs"
)

const defaultRadius = 25

// SearchHandler performs a structured location search. All filter fields
// are optional; with none present every program is returned.
func SearchHandler(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := progs.SearchFilter{
			ZipCode: c.Query("zip_code"),
			State:   c.Query("state"),
			City:    c.Query("city"),
			Radius:  defaultRadius,
		}

		if raw := c.Query("radius"); raw != "" {
			radius, err := strconv.Atoi(raw)
			if err != nil || radius <= 0 {
				errors.BadRequest(c, "radius must be a positive integer", err)
				return
			}

			filter.Radius = radius
		}

		results, err := svc.SearchStructured(c.Request.Context(), filter)
		if err != nil {
			errors.StoreError(c, "failed to search programs", err)
			return
		}

		if results == nil {
			results = []progs.ProgramRecord{}
		}

		c.JSON(http.StatusOK, ProgramListResponse{
			Programs: results,
			Count:    len(results),
			Filter: FilterEcho{
				ZipCode: filter.ZipCode,
				State:   filter.State,
				City:    filter.City,
				Radius:  filter.Radius,
			},
		})
	}
}

// GetHandler returns a single program by its integer id.
func GetHandler(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathID(c, "id")
		if !ok {
			return
		}

		record, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, progs.ErrProgramNotFound) || errors.IsNoRows(err) {
				errors.NotFound(c, "program")
				return
			}

			errors.StoreError(c, "failed to get program", err)

			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// SearchByNameHandler returns programs whose organization name contains
// the given substring.
func SearchByNameHandler(svc *discovery.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			errors.BadRequest(c, "name query parameter is required", nil)
			return
		}

		results, err := svc.SearchByName(c.Request.Context(), name)
		if err != nil {
			errors.StoreError(c, "failed to search programs by name", err)
			return
		}

		if results == nil {
			results = []progs.ProgramRecord{}
		}

		c.JSON(http.StatusOK, NameSearchResponse{
			Programs: results,
			Count:    len(results),
			Query:    name,
		})
	}
}
