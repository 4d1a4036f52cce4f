package routing

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(ls *lockservice.SimpleLockService, r *mux.Router) *mux.Router {
	r.HandleFunc("/acquire", makeHandler(ls, acquire)).Methods(http.MethodPost)
	r.HandleFunc("/checkacquire", makeHandler(ls, checkAcquired)).Methods(http.MethodPost)
	r.HandleFunc("/release", makeHandler(ls, release)).Methods(http.MethodPost)
	r.HandleFunc("/checkrelease", makeHandler(ls, checkReleased)).Methods(http.MethodPost)
	r.HandleFunc("/pounce", makeHandler(ls, pounce)).Methods(http.MethodPost)
	r.HandleFunc("/withdraw", makeHandler(ls, withdraw)).Methods(http.MethodPost)
	r.HandleFunc("/pouncers", makeHandler(ls, pouncers)).Methods(http.MethodPost)
	return r
}

type handler func(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService)

func makeHandler(ls *lockservice.SimpleLockService, h handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, ls)
	}
}

// decode reads a JSON request body into v. It writes a 400 and
// returns false if that isn't possible.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	byteData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(byteData)
}
