package endpoint

import (
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
)

type OrderRequest struct {
	MedName  string `json:"medName" binding:"required,notblank" example:"Napa 500mg"`
	Quantity string `json:"quantity" binding:"required,notblank" example:"10"`
	Address  string `json:"address" binding:"required,notblank" example:"Mirpur, Dhaka"`
	Phone    string `json:"phone" binding:"required,notblank" example:"01700000000"`
}

type ReplyRequest struct {
	Reply string `json:"reply" binding:"required,notblank" example:"In stock, delivery tomorrow"`
}

type ConfirmRequest struct {
	Confirmation string `json:"confirmation" binding:"required,notblank" example:"Please deliver"`
}

// ListMyOrders returns the caller's orders in placement order.
func ListMyOrders(c *gin.Context) {
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Orders retrieved", Data: ctrl.OrdersForUser(userID)})
}

// PlaceOrder godoc
// @Summary      Place a medicine order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body OrderRequest true "Order"
// @Success      201 {object} util.APIResponse{data=model.Order} "Order placed"
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Router       /orders [post]
func PlaceOrder(c *gin.Context) {
	var req OrderRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	o, err := ctrl.PlaceOrder(c.Request.Context(), userID, controller.OrderInput{
		MedName:  req.MedName,
		Quantity: req.Quantity,
		Address:  req.Address,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err, "Failed to place order")
		return
	}
	util.CallCreated(c, util.APISuccessParams{Msg: "Order placed", Data: o})
}

// ConfirmOrder stores the patient's answer to an admin reply.
func ConfirmOrder(c *gin.Context) {
	var req ConfirmRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, userID, ok := callerOrRespond(c)
	if !ok {
		return
	}
	o, err := ctrl.ConfirmOrder(c.Request.Context(), userID, c.Param("id"), req.Confirmation)
	if err != nil {
		respondError(c, err, "Failed to confirm order")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Order confirmed", Data: o})
}

// ListOrders returns every order for the admin.
func ListOrders(c *gin.Context) {
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Orders retrieved", Data: ctrl.Orders()})
}

// ReplyOrder godoc
// @Summary      Reply to an order
// @Description  Move a Pending order to Replied. An order can be replied to once.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Order ID"
// @Param        request body ReplyRequest true "Reply"
// @Success      200 {object} util.APIResponse{data=model.Order} "Order replied"
// @Failure      404 {object} util.APIResponse "Order not found"
// @Failure      409 {object} util.APIResponse "Order already replied"
// @Router       /admin/orders/{id}/reply [patch]
func ReplyOrder(c *gin.Context) {
	var req ReplyRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	ctrl, ok := getControllerOrRespond(c)
	if !ok {
		return
	}
	o, err := ctrl.ReplyOrder(c.Request.Context(), c.Param("id"), req.Reply)
	if err != nil {
		respondError(c, err, "Failed to reply to order")
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Order replied", Data: o})
}
