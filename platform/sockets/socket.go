package socket

import (
	"encoding/json"
	"net/http"

	"github.com/DedS3t/disney-monopoly/app/models"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const (
	EventGame  = "game-event"
	EventOver  = "game-over"
	EventError = "error-message"
)

// Exists reports whether a game id is known, so sockets cannot join random rooms.
type Exists func(gameID string) bool

// Server pushes engine events to every browser in a game's room.
type Server struct {
	io     *socketio.Server
	exists Exists
	log    *logrus.Entry
}

func CreateSocketIOServer(exists Exists) (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{io: io, exists: exists, log: logrus.WithField("component", "sockets")}

	io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		return nil
	})

	io.OnEvent("/", "join-game", func(c socketio.Conn, gameID string) {
		if !s.exists(gameID) {
			c.Emit(EventError, "Invalid game")
			c.Emit("failed")
			return
		}
		c.Join(gameID)
		c.Emit("joined-game", gameID)
		s.log.WithFields(logrus.Fields{"game_id": gameID, "socket": c.ID()}).Debug("socket joined")
	})

	io.OnEvent("/", "leave-game", func(c socketio.Conn, gameID string) {
		c.Leave(gameID)
	})

	io.OnError("/", func(c socketio.Conn, e error) {
		s.log.WithError(e).Warn("socket error")
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		c.LeaveAll()
	})

	return s, nil
}

// Publish sends each event to the game's room in order.
func (s *Server) Publish(gameID string, events []models.Event) {
	for _, ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			s.log.WithError(err).WithField("game_id", gameID).Error("cannot encode event")
			continue
		}
		s.io.BroadcastToRoom("/", gameID, EventGame, string(data))
	}
}

func (s *Server) GameOver(gameID string, winner models.Player) {
	data, err := json.Marshal(winner)
	if err != nil {
		s.log.WithError(err).WithField("game_id", gameID).Error("cannot encode winner")
		return
	}
	s.io.BroadcastToRoom("/", gameID, EventOver, string(data))
}

// Handler serves socket.io behind CORS for the allowed origins.
func (s *Server) Handler(origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	return c.Handler(mux)
}

func (s *Server) Serve() {
	if err := s.io.Serve(); err != nil {
		s.log.WithError(err).Error("socket.io server stopped")
	}
}

func (s *Server) Close() error {
	return s.io.Close()
}
