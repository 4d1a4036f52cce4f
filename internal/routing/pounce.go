package routing

import (
	"net/http"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
)

func pounce(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.PounceRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, req.UserID)
	id, err := ls.Pounce(desc, req.Priority)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, lockservice.PounceResponse{ID: id})
}

func withdraw(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.WithdrawRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, "")
	if err := ls.Withdraw(desc, req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Write([]byte("pouncer withdrawn"))
}

func pouncers(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.LockRequest
	if !decode(w, r, &req) {
		return
	}

	owners := ls.Pouncers(lockservice.NewSimpleDescriptor(req.FileID, ""))
	if owners == nil {
		owners = []string{}
	}
	writeJSON(w, owners)
}
