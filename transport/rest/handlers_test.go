package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Harsh9299/tictactoe-engine/internal/apperror"
	"github.com/Harsh9299/tictactoe-engine/internal/engine"
	"github.com/Harsh9299/tictactoe-engine/internal/entity"
	"github.com/Harsh9299/tictactoe-engine/internal/repository"
	mockedRest "github.com/Harsh9299/tictactoe-engine/mocks/rest"
)

var errSomeError = errors.New("some error")

type handlerMocks struct {
	game *mockedRest.MockgameUseCase
	auth *mockedRest.MockauthService
}

func newHandler(t *testing.T) (GameHandler, handlerMocks) {
	t.Helper()

	mocks := handlerMocks{
		game: mockedRest.NewMockgameUseCase(t),
		auth: mockedRest.NewMockauthService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameHandler(logger, mocks.game, mocks.auth, engine.HardDifficulty), mocks
}

// newEchoCall - builds an echo context for one request. An empty body sends no
// payload, an empty token sends no session cookie.
func newEchoCall(method, target, body, token string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// ongoingBotGame - a bot game in play, owned by human player "p1".
func ongoingBotGame(id string, humanMark engine.Mark) *entity.Game {
	game := entity.NewGame(id, entity.WithBotType)
	game.Status = entity.StatusOngoing
	game.Difficulty = engine.HardDifficulty
	game.Players = []*entity.Player{
		{ID: "p1", Mark: humanMark, GameID: id},
		entity.NewBotPlayer(id, humanMark.Other()),
	}

	return game
}

// playMoves - commits cells in turn order, whoever is to move plays next.
func playMoves(t *testing.T, game *entity.Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		require.NoError(t, game.MakeTurn(game.Turn, cell))
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}

	t.Fatalf("no %s cookie in response", sessionCookieName)

	return nil
}

func TestGameHandler_NewGame(t *testing.T) {
	t.Run("Starts a hard game with default marks", func(t *testing.T) {
		// Given: A handler and a fresh session with no cookie
		handler, mocks := newHandler(t)

		player := &entity.Player{ID: "p1"}
		mocks.game.EXPECT().
			GetOrCreatePlayer(mock.Anything, "").
			Return(player, nil).
			Once()
		mocks.game.EXPECT().
			NewBotGame(mock.Anything, "p1", engine.MarkX, engine.HardDifficulty).
			Return(ongoingBotGame("game-1", engine.MarkX), nil).
			Once()
		mocks.auth.EXPECT().
			GeneratePlayerToken("p1").
			Return("token-1", nil).
			Once()

		// When: Creating a game with no payload
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", "", "")
		require.NoError(t, handler.NewGame(ctx))

		// Then: The game should open on hard with the human as X
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"game_id": "game-1",
			"difficulty": "hard",
			"human": "X",
			"ai": "O",
			"current_player": "X",
			"board": [" ", " ", " ", " ", " ", " ", " ", " ", " "]
		}`, rec.Body.String())

		cookie := sessionCookie(t, rec)
		assert.Equal(t, "token-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("Lets the bot open when the human takes O", func(t *testing.T) {
		// Given: A game where the bot already played the opening move
		handler, mocks := newHandler(t)

		game := ongoingBotGame("game-2", engine.MarkO)
		game.Difficulty = engine.EasyDifficulty
		playMoves(t, game, 4)

		mocks.game.EXPECT().
			GetOrCreatePlayer(mock.Anything, "").
			Return(&entity.Player{ID: "p1"}, nil).
			Once()
		mocks.game.EXPECT().
			NewBotGame(mock.Anything, "p1", engine.MarkO, engine.EasyDifficulty).
			Return(game, nil).
			Once()
		mocks.auth.EXPECT().
			GeneratePlayerToken("p1").
			Return("token-1", nil).
			Once()

		// When: Creating an easy game as O
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", `{"player": "O", "difficulty": "easy"}`, "")
		require.NoError(t, handler.NewGame(ctx))

		// Then: The response should carry the bot's opening move
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"game_id": "game-2",
			"difficulty": "easy",
			"human": "O",
			"ai": "X",
			"current_player": "O",
			"board": [" ", " ", " ", " ", "X", " ", " ", " ", " "],
			"ai_move": 4
		}`, rec.Body.String())
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		// Given: A handler
		handler, _ := newHandler(t)

		// When: Creating a game with a difficulty the engine does not know
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", `{"difficulty": "impossible"}`, "")
		require.NoError(t, handler.NewGame(ctx))

		// Then: The request should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid difficulty"}`, rec.Body.String())
	})

	t.Run("Rejects an unknown player mark", func(t *testing.T) {
		// Given: A handler
		handler, _ := newHandler(t)

		// When: Creating a game as a mark that is not X or O
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", `{"player": "Z"}`, "")
		require.NoError(t, handler.NewGame(ctx))

		// Then: The request should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid player"}`, rec.Body.String())
	})

	t.Run("Opens a fresh session when the cookie does not resolve", func(t *testing.T) {
		// Given: A cookie pointing at a player the storage no longer has
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().
			ParsePlayerID("stale-token").
			Return("ghost", nil).
			Once()
		mocks.game.EXPECT().
			GetOrCreatePlayer(mock.Anything, "ghost").
			Return(nil, errSomeError).
			Once()

		game := ongoingBotGame("game-3", engine.MarkX)
		game.Players[0].ID = "p2"

		mocks.game.EXPECT().
			GetOrCreatePlayer(mock.Anything, "").
			Return(&entity.Player{ID: "p2"}, nil).
			Once()
		mocks.game.EXPECT().
			NewBotGame(mock.Anything, "p2", engine.MarkX, engine.HardDifficulty).
			Return(game, nil).
			Once()
		mocks.auth.EXPECT().
			GeneratePlayerToken("p2").
			Return("token-2", nil).
			Once()

		// When: Creating a game with the stale cookie
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", "", "stale-token")
		require.NoError(t, handler.NewGame(ctx))

		// Then: A new session should be handed out
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "token-2", sessionCookie(t, rec).Value)
	})

	t.Run("Fails when the game cannot be created", func(t *testing.T) {
		// Given: A use case that cannot store the game
		handler, mocks := newHandler(t)

		mocks.game.EXPECT().
			GetOrCreatePlayer(mock.Anything, "").
			Return(&entity.Player{ID: "p1"}, nil).
			Once()
		mocks.game.EXPECT().
			NewBotGame(mock.Anything, "p1", engine.MarkX, engine.HardDifficulty).
			Return(nil, errSomeError).
			Once()

		// When: Creating a game
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/new", "", "")
		require.NoError(t, handler.NewGame(ctx))

		// Then: The handler should answer with a server error
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	})
}

func TestGameHandler_MakeMove(t *testing.T) {
	t.Run("Plays the move and reports the bot reply", func(t *testing.T) {
		// Given: A session owning a fresh game, and a use case that plays
		// the human's move plus the bot's reply
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()

		after := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, after, 0, 4)

		mocks.game.EXPECT().
			MakeTurn(mock.Anything, "p1", 0).
			Return(after, nil).
			Once()

		// When: Playing cell 0
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 0}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: Both moves should be on the board and it is the human's turn
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"success": true,
			"board": ["X", " ", " ", " ", "O", " ", " ", " ", " "],
			"current_player": "X",
			"game_over": false,
			"winner": null,
			"ai_move": 4
		}`, rec.Body.String())
	})

	t.Run("Reports the final position when the move ends the game", func(t *testing.T) {
		// Given: A game the human wins with the next move
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, pre, 0, 3, 1, 4)

		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()

		final := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, final, 0, 3, 1, 4, 2)
		require.True(t, final.IsFinished())

		mocks.game.EXPECT().
			MakeTurn(mock.Anything, "p1", 2).
			Return(final, apperror.ErrGameFinished).
			Once()

		// When: Playing the winning cell
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 2}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The final position should come back as a success
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"success": true,
			"board": ["X", "X", "X", "O", "O", " ", " ", " ", " "],
			"current_player": "",
			"game_over": true,
			"winner": "X"
		}`, rec.Body.String())
	})

	t.Run("Rejects a call without a session", func(t *testing.T) {
		// Given: A handler
		handler, _ := newHandler(t)

		// When: Playing a move with no cookie
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 0}`, "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The caller should be asked to authenticate
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid session"}`, rec.Body.String())
	})

	t.Run("Rejects a position off the board", func(t *testing.T) {
		// Given: A valid session
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		// When: Playing cell 9
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 9}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The request should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid position"}`, rec.Body.String())
	})

	t.Run("Rejects a missing position", func(t *testing.T) {
		// Given: A valid session
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		// When: Playing with no position in the payload
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The request should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid position"}`, rec.Body.String())
	})

	t.Run("Answers not found for somebody else's game", func(t *testing.T) {
		// Given: A session playing a different game than the URL names
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(ongoingBotGame("other-game", engine.MarkX), nil).
			Once()

		// When: Playing a move in game-1
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 0}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The game should not be revealed
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "Game not found"}`, rec.Body.String())
	})

	t.Run("Answers not found when no game is active", func(t *testing.T) {
		// Given: A session with no game in play
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(nil, apperror.ErrNoActiveGames).
			Once()

		// When: Playing a move
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 0}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: An error should indicate the game was not found
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "Game not found"}`, rec.Body.String())
	})

	t.Run("Rejects a move on an occupied cell", func(t *testing.T) {
		// Given: A game where cell 4 is already taken
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, pre, 4, 0)

		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()
		mocks.game.EXPECT().
			MakeTurn(mock.Anything, "p1", 4).
			Return(pre, engine.ErrInvalidMove).
			Once()

		// When: Playing cell 4 again
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/move", `{"position": 4}`, "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.MakeMove(ctx))

		// Then: The move should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid move"}`, rec.Body.String())
	})
}

func TestGameHandler_UndoMove(t *testing.T) {
	t.Run("Takes back the last round", func(t *testing.T) {
		// Given: A game with one full round played
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, pre, 0, 4)

		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()
		mocks.game.EXPECT().
			UndoLastRound(mock.Anything, "p1").
			Return(ongoingBotGame("game-1", engine.MarkX), nil).
			Once()

		// When: Undoing the round
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/undo", "", "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.UndoMove(ctx))

		// Then: The board should be empty again with the human to move
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"success": true,
			"board": [" ", " ", " ", " ", " ", " ", " ", " ", " "],
			"current_player": "X"
		}`, rec.Body.String())
	})

	t.Run("Rejects undo before a full round was played", func(t *testing.T) {
		// Given: A game with too little history
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()
		mocks.game.EXPECT().
			UndoLastRound(mock.Anything, "p1").
			Return(pre, engine.ErrInsufficientHistory).
			Once()

		// When: Undoing with nothing to take back
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/undo", "", "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.UndoMove(ctx))

		// Then: The undo should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "No moves to undo"}`, rec.Body.String())
	})

	t.Run("Rejects undo in a game against a human", func(t *testing.T) {
		// Given: A game where undo is not offered
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()

		pre := ongoingBotGame("game-1", engine.MarkX)
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(pre, nil).
			Once()
		mocks.game.EXPECT().
			UndoLastRound(mock.Anything, "p1").
			Return(pre, apperror.ErrUndoUnavailable).
			Once()

		// When: Undoing the round
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/undo", "", "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.UndoMove(ctx))

		// Then: The undo should be rejected
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Cannot undo"}`, rec.Body.String())
	})

	t.Run("Answers not found when no game is active", func(t *testing.T) {
		// Given: A session with no game in play
		handler, mocks := newHandler(t)

		mocks.auth.EXPECT().ParsePlayerID("token-1").Return("p1", nil).Once()
		mocks.game.EXPECT().
			GetGameByPlayerID(mock.Anything, "p1").
			Return(nil, apperror.ErrNoActiveGames).
			Once()

		// When: Undoing a round
		ctx, rec := newEchoCall(http.MethodPost, "/api/game/game-1/undo", "", "token-1")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.UndoMove(ctx))

		// Then: An error should indicate the game was not found
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "Game not found"}`, rec.Body.String())
	})
}

func TestGameHandler_GameState(t *testing.T) {
	t.Run("Reports a position in play", func(t *testing.T) {
		// Given: A game with one move on the board
		handler, mocks := newHandler(t)

		game := ongoingBotGame("game-1", engine.MarkX)
		playMoves(t, game, 4)

		mocks.game.EXPECT().
			GetGameByID(mock.Anything, "game-1").
			Return(game, nil).
			Once()

		// When: Asking for the game state
		ctx, rec := newEchoCall(http.MethodGet, "/api/game/game-1/state", "", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("game-1")
		require.NoError(t, handler.GameState(ctx))

		// Then: The position should be reported as still running
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"board": [" ", " ", " ", " ", "X", " ", " ", " ", " "],
			"current_player": "O",
			"game_over": false,
			"winner": null,
			"difficulty": "hard",
			"move_count": 1
		}`, rec.Body.String())
	})

	t.Run("Answers not found for an unknown game", func(t *testing.T) {
		// Given: A storage without the requested game
		handler, mocks := newHandler(t)

		mocks.game.EXPECT().
			GetGameByID(mock.Anything, "missing").
			Return(nil, repository.ErrGameNotFound).
			Once()

		// When: Asking for the game state
		ctx, rec := newEchoCall(http.MethodGet, "/api/game/missing/state", "", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("missing")
		require.NoError(t, handler.GameState(ctx))

		// Then: An error should indicate the game was not found
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "Game not found"}`, rec.Body.String())
	})
}

func TestGameHandler_Statistics(t *testing.T) {
	t.Run("Reports the aggregate over recorded games", func(t *testing.T) {
		// Given: A use case with a built report
		handler, mocks := newHandler(t)

		mocks.game.EXPECT().
			Statistics(mock.Anything).
			Return(&entity.Statistics{
				TotalGames:   4,
				HumanWins:    2,
				BotWins:      1,
				Draws:        1,
				WinRate:      50,
				AverageMoves: 6.5,
				DifficultyStats: map[engine.Difficulty]entity.DifficultyStats{
					engine.HardDifficulty: {Games: 4, Wins: 2},
				},
			}, nil).
			Once()

		// When: Asking for statistics
		ctx, rec := newEchoCall(http.MethodGet, "/api/statistics", "", "")
		require.NoError(t, handler.Statistics(ctx))

		// Then: The report should come back as-is
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"total_games": 4,
			"human_wins": 2,
			"ai_wins": 1,
			"draws": 1,
			"win_rate": 50,
			"avg_moves": 6.5,
			"difficulty_stats": {"hard": {"games": 4, "wins": 2}}
		}`, rec.Body.String())
	})

	t.Run("Fails when the report cannot be built", func(t *testing.T) {
		// Given: A use case that cannot reach its storage
		handler, mocks := newHandler(t)

		mocks.game.EXPECT().
			Statistics(mock.Anything).
			Return(nil, errSomeError).
			Once()

		// When: Asking for statistics
		ctx, rec := newEchoCall(http.MethodGet, "/api/statistics", "", "")
		require.NoError(t, handler.Statistics(ctx))

		// Then: The handler should answer with a server error
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	})
}

func TestGameHandler_Health(t *testing.T) {
	t.Run("Reports healthy with the active game count", func(t *testing.T) {
		// Given: A use case counting two games in play
		handler, mocks := newHandler(t)

		mocks.game.EXPECT().
			ActiveGames(mock.Anything).
			Return(2, nil).
			Once()

		// When: Asking for health
		ctx, rec := newEchoCall(http.MethodGet, "/api/health", "", "")
		require.NoError(t, handler.Health(ctx))

		// Then: The service should report healthy
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "healthy", "active_games": 2}`, rec.Body.String())
	})
}

func TestGameHandler_Ping(t *testing.T) {
	t.Run("Answers pong", func(t *testing.T) {
		// Given: A handler
		handler, _ := newHandler(t)

		// When: Pinging the server
		ctx, rec := newEchoCall(http.MethodGet, "/ping", "", "")
		require.NoError(t, handler.Ping(ctx))

		// Then: The answer should be pong
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})
}
