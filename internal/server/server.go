// Package server exposes the interpreter over HTTP: one-shot evaluation with
// recorded history, history reads, and a websocket transport for live editor
// sessions. Every evaluation gets a fresh stack and dictionary unless it is
// part of a websocket session, which keeps its own pair for its lifetime.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/forthwith/forthwith"
	"github.com/forthwith/forthwith/internal/history"
	"github.com/forthwith/forthwith/internal/panicerr"
)

type Server struct {
	interp  *forthwith.Interp
	store   *history.Store
	timeout time.Duration
	logf    func(mess string, args ...interface{})
}

// New wires the evaluation service. store may be nil to disable history;
// timeout bounds each evaluation, zero means unbounded.
func New(interp *forthwith.Interp, store *history.Store, timeout time.Duration, logf func(mess string, args ...interface{})) *Server {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Server{interp: interp, store: store, timeout: timeout, logf: logf}
}

func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /eval", srv.handleEval)
	mux.HandleFunc("GET /programs", srv.handlePrograms)
	mux.HandleFunc("GET /programs/{id}", srv.handleProgram)
	mux.HandleFunc("GET /ws", srv.handleWS)
	return mux
}

type evalRequest struct {
	Source string `json:"source"`
}

type evalResponse struct {
	ID     string `json:"id,omitempty"`
	Output string `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
	Word  string `json:"word,omitempty"`
}

func (srv *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()
	if srv.timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	out, err := srv.interp.Run(ctx, req.Source)
	if err != nil {
		var perr *forthwith.ParseError
		if errors.As(err, &perr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: perr.Message, Word: perr.Word})
			return
		}
		srv.logf("eval failed: %v", err)
		if stack := panicerr.Stack(err); stack != "" {
			srv.logf("eval panic stack:\n%s", stack)
		}
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})
		return
	}

	resp := evalResponse{Output: out}
	if srv.store != nil {
		prog, serr := srv.store.Save(r.Context(), req.Source, out)
		if serr != nil {
			srv.logf("history save failed: %v", serr)
		} else {
			resp.ID = prog.ID
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (srv *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	if srv.store == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "history disabled"})
		return
	}
	progs, err := srv.store.List(r.Context(), 50)
	if err != nil {
		srv.logf("history list failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "history unavailable"})
		return
	}
	if progs == nil {
		progs = []history.Program{}
	}
	writeJSON(w, http.StatusOK, progs)
}

func (srv *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	if srv.store == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "history disabled"})
		return
	}
	prog, err := srv.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, history.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "program not found"})
		return
	}
	if err != nil {
		srv.logf("history get failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "history unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, prog)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWS runs a live session: each text message is evaluated as a fragment
// of one ongoing program, so definitions and stack state persist until the
// connection closes.
func (srv *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.logf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sess := srv.interp.NewSession()
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		ctx := r.Context()
		var cancel func()
		if srv.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		}
		out, err := sess.Eval(ctx, string(data))
		if cancel != nil {
			cancel()
		}

		reply := evalResponse{Output: out}
		if err != nil {
			msg, werr := json.Marshal(errorResponse{Error: err.Error()})
			if werr == nil {
				werr = conn.WriteMessage(websocket.TextMessage, msg)
			}
			if werr != nil {
				return
			}
			continue
		}
		msg, werr := json.Marshal(reply)
		if werr == nil {
			werr = conn.WriteMessage(websocket.TextMessage, msg)
		}
		if werr != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
