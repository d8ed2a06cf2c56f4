package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	wsmodels "police-hr-backend/models/ws"
)

type Provider interface {
	AddClient(userID, tenantID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendToTenant(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		tenants: map[string]string{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession // map[userID]
	tenants map[string]string        // map[userID]tenantID
}

func (i *impl) AddClient(userID, tenantID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.tenants[userID] = tenantID
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	delete(i.tenants, userID)
	sess.stop()
	close(sess.sendCh)
}

// SendToTenant рассылка события всем подключённым пользователям подразделения
func (i *impl) SendToTenant(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	for userID, tenantID := range i.tenants {
		if tenantID != msg.ToTenantID {
			continue
		}
		sess, ok := i.clients[userID]
		if ok {
			select {
			case sess.sendCh <- msg:
			default:
			}
		}
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
