package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yosefdabbas22/weather-app/internal/geo"
	"github.com/yosefdabbas22/weather-app/internal/store"
	"github.com/yosefdabbas22/weather-app/internal/weather"
)

var validate = validator.New()

// RecentLister reads the recent-search list for the API.
type RecentLister interface {
	List(limit int) ([]store.RecentSearch, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, recents RecentLister) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.Lookup(c.Context(), q)
		if err != nil {
			return mapLookupError(err)
		}
		return c.JSON(report)
	})

	v1.Get("/weather/coords", func(c *fiber.Ctx) error {
		coords, err := parseCoordsQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.LookupCoords(c.Context(), coords.Lat, coords.Lon)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}
		return c.JSON(report)
	})

	v1.Get("/resolve", func(c *fiber.Ctx) error {
		q, err := parseSearchQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc, err := service.Resolve(c.Context(), q)
		if err != nil {
			return mapLookupError(err)
		}
		return c.JSON(loc)
	})

	v1.Get("/searches/recent", func(c *fiber.Ctx) error {
		limit := 10
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
			}
			limit = n
		}

		recs, err := recents.List(limit)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(fiber.Map{"searches": []store.RecentSearch{}})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list recent searches")
		}
		return c.JSON(fiber.Map{"searches": recs})
	})
}

// mapLookupError translates resolution outcomes into HTTP statuses. Only
// exhaustion is user-facing; blank input is a caller mistake.
func mapLookupError(err error) error {
	switch {
	case errors.Is(err, geo.ErrEmptyInput):
		return fiber.NewError(fiber.StatusBadRequest, "q query parameter is required")
	case errors.Is(err, geo.ErrExhausted):
		return fiber.NewError(fiber.StatusNotFound, "location not found")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// searchQuery holds the free-form location input.
type searchQuery struct {
	Q string `validate:"required"`
}

func parseSearchQuery(c *fiber.Ctx) (string, error) {
	q := searchQuery{Q: c.Query("q")}
	if err := validate.Struct(q); err != nil {
		return "", errors.New("q query parameter is required")
	}
	return q.Q, nil
}

// coordsQuery holds the shared-location coordinates.
type coordsQuery struct {
	Lat float64 `validate:"latitude"`
	Lon float64 `validate:"longitude"`
}

func parseCoordsQuery(c *fiber.Ctx) (coordsQuery, error) {
	var q coordsQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}

	q.Lat = lat
	q.Lon = lon
	if err := validate.Struct(q); err != nil {
		return q, errors.New("lat/lon out of range")
	}
	return q, nil
}
