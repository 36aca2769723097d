package http

import (
	"net/http"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// CreateParcel handles POST /parcels. Parents are resolved sender first,
// then recipient, then zone; the handler reports the first one missing,
// including identifiers that do not parse.
func (s *Server) CreateParcel(c echo.Context) error {
	var req CreateParcelRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommandFromRefs(parcelID, parcel.Details{
		Description:     req.Description,
		Weight:          req.Weight,
		DestinationCity: req.DestinationCity,
		Priority:        req.Priority,
	}, req.SenderID, req.RecipientID, req.ZoneID)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err = s.h.CreateParcel.Handle(ctx, cmd); err != nil {
		return err
	}

	return s.respondWithParcel(c, http.StatusCreated, parcelID)
}

// GetParcels handles GET /parcels.
func (s *Server) GetParcels(c echo.Context) error {
	views, err := s.h.GetAllParcels.Handle(c.Request().Context(), queries.NewGetAllParcelsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// GetParcel handles GET /parcels/{id}.
func (s *Server) GetParcel(c echo.Context) error {
	parcelID, err := pathID(c, "id", "Parcel")
	if err != nil {
		return err
	}
	return s.respondWithParcel(c, http.StatusOK, parcelID)
}

// DeleteParcel handles DELETE /parcels/{id}.
func (s *Server) DeleteParcel(c echo.Context) error {
	parcelID, err := pathID(c, "id", "Parcel")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return err
	}

	if err = s.h.DeleteParcel.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignCourier handles PUT /parcels/assign/{parcelId}?courierId=.
func (s *Server) AssignCourier(c echo.Context) error {
	parcelID, err := pathID(c, "parcelId", "Parcel")
	if err != nil {
		return err
	}

	rawCourierID, err := requiredQuery(c, "courierId")
	if err != nil {
		return err
	}
	courierID, err := kernel.ReferenceFromString("Courier", rawCourierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignCourierCommand(parcelID, courierID)
	if err != nil {
		return err
	}

	if err = s.h.AssignCourier.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithParcel(c, http.StatusOK, parcelID)
}

// UpdateParcelStatus handles PUT /parcels/status/{parcelId}?status=&comment=.
func (s *Server) UpdateParcelStatus(c echo.Context) error {
	parcelID, err := pathID(c, "parcelId", "Parcel")
	if err != nil {
		return err
	}

	label, err := requiredQuery(c, "status")
	if err != nil {
		return err
	}
	comment, err := optionalQuery(c, "comment")
	if err != nil {
		return err
	}

	status, err := parcel.ParseStatus(label)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, status, comment)
	if err != nil {
		return err
	}

	if err = s.h.UpdateParcelStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWithParcel(c, http.StatusOK, parcelID)
}

// GetParcelHistory handles GET /parcels/{id}/history.
func (s *Server) GetParcelHistory(c echo.Context) error {
	parcelID, err := pathID(c, "id", "Parcel")
	if err != nil {
		return err
	}

	query, err := queries.NewGetParcelHistoryQuery(parcelID)
	if err != nil {
		return err
	}

	entries, err := s.h.GetParcelHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// AddParcelProduct handles POST /parcels/{id}/products and answers with the
// stored line.
func (s *Server) AddParcelProduct(c echo.Context) error {
	parcelID, err := pathID(c, "id", "Parcel")
	if err != nil {
		return err
	}

	var req AddProductRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}
	productID, err := kernel.ReferenceFromString("Product", req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddParcelProductCommand(parcelID, productID, req.Quantity)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err = s.h.AddParcelProduct.Handle(ctx, cmd); err != nil {
		return err
	}

	lines, err := s.parcelProducts(c, parcelID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.ProductID == productID.String() {
			return c.JSON(http.StatusCreated, line)
		}
	}
	return c.JSON(http.StatusCreated, lines)
}

// GetParcelProducts handles GET /parcels/{id}/products.
func (s *Server) GetParcelProducts(c echo.Context) error {
	parcelID, err := pathID(c, "id", "Parcel")
	if err != nil {
		return err
	}

	lines, err := s.parcelProducts(c, parcelID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

func (s *Server) parcelProducts(c echo.Context, parcelID kernel.UUID) ([]queries.ProductLineView, error) {
	query, err := queries.NewGetParcelProductsQuery(parcelID)
	if err != nil {
		return nil, err
	}
	return s.h.GetParcelProducts.Handle(c.Request().Context(), query)
}

func (s *Server) respondWithParcel(c echo.Context, status int, parcelID kernel.UUID) error {
	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return err
	}

	view, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, view)
}
