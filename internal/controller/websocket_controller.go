package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules/internal/middleware"
	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/benbeisheim/chessrules/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type WebSocketController struct{}

func NewWebSocketController() *WebSocketController {
	return &WebSocketController{}
}

// HandleConnection plays one game for the lifetime of the connection.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	clientID, _ := c.Locals(middleware.ClientIDLocal).(string)
	session := service.NewSession(uuid.New().String())
	log.Infow("websocket connected", "clientID", clientID, "session", session.ID)
	defer log.Infow("websocket closed", "clientID", clientID, "session", session.ID)

	reply, err := ws.NewMessage(ws.MessageTypeGameState, session.State())
	if err != nil {
		log.Errorw("marshal state", "session", session.ID, "err", err)
		return
	}
	if err := c.WriteJSON(reply); err != nil {
		log.Warnw("write failed", "session", session.ID, "err", err)
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugw("read error", "session", session.ID, "err", err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			reply = ws.ErrorMessage(fmt.Errorf("parse error: %w", err))
		} else if reply, err = wsc.handleMessage(session, msg); err != nil {
			reply = ws.ErrorMessage(err)
		}

		if err := c.WriteJSON(reply); err != nil {
			log.Warnw("write failed", "session", session.ID, "err", err)
			return
		}
	}
}

// handleMessage applies one client message to the session and builds the
// reply. A rejected move or undo is reported as an error message.
func (wsc *WebSocketController) handleMessage(session *service.Session, msg ws.Message) (ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.Move
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return ws.Message{}, fmt.Errorf("parse move: %w", err)
		}
		state, err := session.Move(move)
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeGameState, state)

	case ws.MessageTypeUndo:
		state, err := session.Undo()
		if err != nil {
			return ws.Message{}, err
		}
		return ws.NewMessage(ws.MessageTypeGameState, state)

	case ws.MessageTypeReset:
		return ws.NewMessage(ws.MessageTypeGameState, session.Reset())

	case ws.MessageTypeGameState:
		return ws.NewMessage(ws.MessageTypeGameState, session.State())

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesPayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				return ws.Message{}, fmt.Errorf("parse legal moves request: %w", err)
			}
		}
		return ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesReply{Moves: session.LegalMoves(req.From)})

	default:
		return ws.Message{}, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
