package wechat

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"haitch/internal/shared/logger"
)

// WeChatHandler answers the platform's server verification callback.
type WeChatHandler struct {
	token  string
	logger logger.Interface
}

func NewWeChatHandler(token string, log logger.Interface) *WeChatHandler {
	return &WeChatHandler{
		token:  token,
		logger: log,
	}
}

// Verify handles GET /wechat
// WeChat sends signature, timestamp, nonce and echostr; the server proves
// ownership by echoing echostr back when the signature checks out.
func (h *WeChatHandler) Verify(c *gin.Context) {
	signature := c.Query("signature")
	timestamp := c.Query("timestamp")
	nonce := c.Query("nonce")
	echostr := c.Query("echostr")

	if signature == "" || timestamp == "" || nonce == "" {
		c.String(http.StatusBadRequest, "missing parameters")
		return
	}

	expected := computeSignature(h.token, timestamp, nonce)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		h.logger.Warnw("wechat signature mismatch", "timestamp", timestamp, "nonce", nonce)
		c.String(http.StatusForbidden, "invalid signature")
		return
	}

	c.String(http.StatusOK, echostr)
}

// computeSignature follows the platform scheme: sort token, timestamp and
// nonce lexically, concatenate, then hex-encode the SHA1 digest.
func computeSignature(token, timestamp, nonce string) string {
	parts := []string{token, timestamp, nonce}
	sort.Strings(parts)
	sum := sha1.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}
