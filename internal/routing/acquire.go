package routing

import (
	"net/http"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
)

// acquire wraps the lock Acquire function and creates a clean HTTP service.
func acquire(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.LockRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, req.UserID)
	if err := ls.Acquire(desc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Write([]byte("lock acquired"))
}

func checkAcquired(w http.ResponseWriter, r *http.Request, ls *lockservice.SimpleLockService) {
	var req lockservice.LockRequest
	if !decode(w, r, &req) {
		return
	}

	desc := lockservice.NewSimpleDescriptor(req.FileID, "")
	owner, ok := ls.CheckAcquired(desc)
	if !ok {
		http.Error(w, lockservice.ErrCheckAcquireFailure.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, lockservice.CheckAcquireRes{Owner: owner})
}
