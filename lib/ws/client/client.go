package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type WsClient struct {
	conn   *websocket.Conn
	userID string
}

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

var closeCodes []int

func init() {
	for code := websocket.CloseNormalClosure; code <= websocket.CloseTLSHandshake; code++ {
		closeCodes = append(closeCodes, code)
	}
}

// Dispatch читает входящие сообщения до закрытия соединения,
// клиентские сообщения не обрабатываются
func (c *WsClient) Dispatch() {
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).
					WithField("user_id", c.userID).
					Error("ошибка получения сообщения")
			}
			return
		}
		log.WithField("user_id", c.userID).
			WithField("ws_message_len", len(data)).
			Debug("входящее ws-сообщение")
	}
}
