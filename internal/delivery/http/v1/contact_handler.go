package v1

import (
	"net/http"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send an enquiry to the office. Field errors come back keyed by field name.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=domain.InquiryReceipt}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", receipt)
}
