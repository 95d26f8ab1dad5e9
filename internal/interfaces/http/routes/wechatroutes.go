package routes

import (
	"github.com/gin-gonic/gin"

	wechathandlers "haitch/internal/interfaces/http/handlers/wechat"
)

// WeChatRouteConfig holds dependencies for the WeChat callback routes.
type WeChatRouteConfig struct {
	WeChatHandler *wechathandlers.WeChatHandler
}

// SetupWeChatRoutes configures the WeChat server verification route. It must
// stay public so the platform can reach it.
func SetupWeChatRoutes(engine *gin.Engine, cfg *WeChatRouteConfig) {
	engine.GET("/wechat", cfg.WeChatHandler.Verify)
}
