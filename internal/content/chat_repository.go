package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/database"
)

const (
	chatSessionColumns = "id, title, created_at, updated_at"
	chatMessageColumns = "id, session_id, role, content, thinking, referenced_note_ids, seq, created_at"
)

// chatMessageRow is the stored form of a ChatMessage; thinking and
// referenced ids are kept as JSON text.
type chatMessageRow struct {
	ID                string         `db:"id"`
	SessionID         string         `db:"session_id"`
	Role              string         `db:"role"`
	Content           string         `db:"content"`
	Thinking          sql.NullString `db:"thinking"`
	ReferencedNoteIDs sql.NullString `db:"referenced_note_ids"`
	Seq               int            `db:"seq"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (row chatMessageRow) toMessage() (ChatMessage, error) {
	msg := ChatMessage{
		ID:        row.ID,
		SessionID: row.SessionID,
		Role:      ChatRole(row.Role),
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
	if row.Thinking.Valid && row.Thinking.String != "" {
		var thinking Thinking
		if err := json.Unmarshal([]byte(row.Thinking.String), &thinking); err != nil {
			return ChatMessage{}, fmt.Errorf("decode thinking of message %s: %w", row.ID, err)
		}
		msg.Thinking = &thinking
	}
	if row.ReferencedNoteIDs.Valid && row.ReferencedNoteIDs.String != "" {
		if err := json.Unmarshal([]byte(row.ReferencedNoteIDs.String), &msg.ReferencedNoteIDs); err != nil {
			return ChatMessage{}, fmt.Errorf("decode referenced notes of message %s: %w", row.ID, err)
		}
	}
	return msg, nil
}

// DBChatRepository implements ChatRepository using SQL.
type DBChatRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBChatRepository creates a new DBChatRepository.
func NewDBChatRepository(db *sqlx.DB) *DBChatRepository {
	return &DBChatRepository{db: db, now: utcNow, newID: uuid.NewString}
}

func (r *DBChatRepository) CreateSession(ctx context.Context, title string) (*ChatSession, error) {
	now := r.now()
	session := &ChatSession{ID: r.newID(), Title: title, CreatedAt: now, UpdatedAt: now}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_sessions ("+chatSessionColumns+") VALUES (?, ?, ?, ?)",
		session.ID, session.Title, session.CreatedAt, session.UpdatedAt,
	); err != nil {
		return nil, mapError("insert chat session", err)
	}
	return session, nil
}

func (r *DBChatRepository) GetSession(ctx context.Context, id string) (*ChatSession, error) {
	var session ChatSession
	if err := r.db.GetContext(ctx, &session, "SELECT "+chatSessionColumns+" FROM chat_sessions WHERE id = ?", id); err != nil {
		return nil, mapError(fmt.Sprintf("load chat session %s", id), err)
	}
	return &session, nil
}

func (r *DBChatRepository) ListSessions(ctx context.Context) ([]ChatSession, error) {
	var sessions []ChatSession
	if err := r.db.SelectContext(ctx, &sessions, "SELECT "+chatSessionColumns+" FROM chat_sessions ORDER BY updated_at DESC, id"); err != nil {
		return nil, mapError("load chat sessions", err)
	}
	return sessions, nil
}

func (r *DBChatRepository) DeleteSession(ctx context.Context, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM chat_messages WHERE session_id = ?", id); err != nil {
			return mapError(fmt.Sprintf("delete messages of chat session %s", id), err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM chat_sessions WHERE id = ?", id)
		if err != nil {
			return mapError(fmt.Sprintf("delete chat session %s", id), err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return notFound("delete chat session", "chat session %s", id)
		}
		return nil
	})
}

func (r *DBChatRepository) ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	var rows []chatMessageRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT "+chatMessageColumns+" FROM chat_messages WHERE session_id = ? ORDER BY seq", sessionID,
	); err != nil {
		return nil, mapError(fmt.Sprintf("load messages of chat session %s", sessionID), err)
	}

	messages := make([]ChatMessage, 0, len(rows))
	for _, row := range rows {
		msg, err := row.toMessage()
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *DBChatRepository) CreateMessage(ctx context.Context, params NewChatMessage) (*ChatMessage, error) {
	var thinking, referenced sql.NullString
	if params.Thinking != nil {
		b, err := json.Marshal(params.Thinking)
		if err != nil {
			return nil, fmt.Errorf("encode thinking: %w", err)
		}
		thinking = sql.NullString{String: string(b), Valid: true}
	}
	if len(params.ReferencedNoteIDs) > 0 {
		b, err := json.Marshal(params.ReferencedNoteIDs)
		if err != nil {
			return nil, fmt.Errorf("encode referenced notes: %w", err)
		}
		referenced = sql.NullString{String: string(b), Valid: true}
	}

	now := r.now()
	msg := &ChatMessage{
		ID:                r.newID(),
		SessionID:         params.SessionID,
		Role:              params.Role,
		Content:           params.Content,
		Thinking:          params.Thinking,
		ReferencedNoteIDs: params.ReferencedNoteIDs,
		CreatedAt:         now,
	}
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE chat_sessions SET updated_at = ? WHERE id = ?", now, params.SessionID)
		if err != nil {
			return mapError(fmt.Sprintf("touch chat session %s", params.SessionID), err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return notFound("create chat message", "chat session %s", params.SessionID)
		}

		var seq int
		if err := tx.GetContext(ctx, &seq, "SELECT COALESCE(MAX(seq), 0) + 1 FROM chat_messages WHERE session_id = ?", params.SessionID); err != nil {
			return mapError(fmt.Sprintf("next message position in chat session %s", params.SessionID), err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO chat_messages ("+chatMessageColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			msg.ID, msg.SessionID, string(msg.Role), msg.Content, thinking, referenced, seq, msg.CreatedAt,
		); err != nil {
			return mapError(fmt.Sprintf("insert message into chat session %s", params.SessionID), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}
