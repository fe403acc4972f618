package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	snapshotService   services.SnapshotService
}

func NewTournamentHandler(ts services.TournamentService, ss services.SnapshotService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		snapshotService:   ss,
	}
}

type registerPlayerInput struct {
	Name string `json:"name"`
}

func (h *TournamentHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Ping(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var input registerPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.RegisterPlayer(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.tournamentService.Players(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) CountPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.CountPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"count": count}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.GetPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) ClearPlayers(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.ClearAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	var input models.MatchResult
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.WinnerID <= 0 || input.LoserID <= 0 {
		badRequestResponse(w, r, errors.New("winner_id and loser_id must be positive integers"))
		return
	}

	if err := h.tournamentService.ReportMatch(r.Context(), input.WinnerID, input.LoserID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandler) ResetMatches(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.ResetMatches(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) Pairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.SwissPairings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) PublishSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.Publish(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"snapshot": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
