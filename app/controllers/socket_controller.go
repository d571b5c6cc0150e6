package controllers

import (
	"net/http"
	"worksuite/app/socket"
)

type SocketController struct{ Hub *socket.Hub }

func NewSocketController(hub *socket.Hub) *SocketController { return &SocketController{Hub: hub} }

func (c *SocketController) Serve(w http.ResponseWriter, r *http.Request) {
	c.Hub.Serve(w, r)
}
