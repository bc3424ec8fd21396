// file: internal/repositories/conversation_repository.go
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"startupbridge/internal/database"
	"startupbridge/internal/models"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pqForeignKeyViolation = "23503"

// conversationRepository implements ConversationRepository
type conversationRepository struct {
	*BaseRepository
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *database.Manager, logger *zap.Logger) ConversationRepository {
	return &conversationRepository{
		BaseRepository: NewBaseRepository(db, logger),
	}
}

// CreateWithMessage creates a conversation and its first message atomically
func (r *conversationRepository) CreateWithMessage(ctx context.Context, participantUIDs []string, senderUID, text string) (int64, int64, error) {
	var conversationID, messageID int64

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		resolved, err := resolveUserIDs(ctx, tx, participantUIDs)
		if err != nil {
			return err
		}

		var missing []string
		participantIDs := make([]int64, 0, len(participantUIDs))
		for _, uid := range participantUIDs {
			id, ok := resolved[uid]
			if !ok {
				missing = append(missing, uid)
				continue
			}
			participantIDs = append(participantIDs, id)
		}
		if len(missing) > 0 {
			return &UnresolvedParticipantsError{Missing: missing}
		}

		senderID, ok := resolved[senderUID]
		if !ok {
			return ErrUserNotFound
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO conversations (participants, last_message) VALUES ($1, $2) RETURNING id`,
			pq.Array(participantIDs), text,
		).Scan(&conversationID)
		if err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO messages (conversation_id, sender_id, text) VALUES ($1, $2, $3) RETURNING id`,
			conversationID, senderID, text,
		).Scan(&messageID)
		if err != nil {
			return fmt.Errorf("failed to create initial message: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	r.GetLogger().Info("Conversation created",
		zap.Int64("conversation_id", conversationID),
		zap.Int("participants", len(participantUIDs)),
	)
	return conversationID, messageID, nil
}

// ListForUser returns the user's active conversations, most recent first
func (r *conversationRepository) ListForUser(ctx context.Context, userID int64) ([]*models.ConversationSummary, error) {
	query := `
		SELECT
			c.id, COALESCE(c.last_message, ''), c.last_message_time, c.created_at,
			array_agg(u.name) AS participant_names,
			array_agg(u.firebase_uid) AS participant_uids
		FROM conversations c
		JOIN users u ON u.id = ANY(c.participants)
		WHERE $1 = ANY(c.participants) AND c.status = 'active'
		GROUP BY c.id, c.last_message, c.last_message_time, c.created_at
		ORDER BY c.last_message_time DESC`

	rows, err := r.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	conversations := make([]*models.ConversationSummary, 0)
	for rows.Next() {
		var c models.ConversationSummary
		if err := rows.Scan(
			&c.ID, &c.LastMessage, &c.LastMessageTime, &c.CreatedAt,
			pq.Array(&c.ParticipantNames), pq.Array(&c.ParticipantUIDs),
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}

	return conversations, nil
}

// ListMessages returns every message of the conversation, oldest first
func (r *conversationRepository) ListMessages(ctx context.Context, conversationID int64) ([]*models.MessageWithSender, error) {
	if outOfSerialRange(conversationID) {
		return []*models.MessageWithSender{}, nil
	}

	query := `
		SELECT m.id, m.text, COALESCE(m.status, 'sent'), m.created_at,
			u.name AS sender_name, u.firebase_uid AS sender_uid
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at ASC`

	rows, err := r.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.MessageWithSender, 0)
	for rows.Next() {
		var m models.MessageWithSender
		if err := rows.Scan(&m.ID, &m.Text, &m.Status, &m.CreatedAt, &m.SenderName, &m.SenderUID); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

// AppendMessage inserts a message and refreshes the conversation summary.
// Either both writes commit or neither does.
func (r *conversationRepository) AppendMessage(ctx context.Context, conversationID int64, senderUID, text string) (int64, error) {
	var messageID int64

	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		var senderID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE firebase_uid = $1`, senderUID).Scan(&senderID)
		if err != nil {
			if r.IsNotFound(err) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to resolve sender: %w", err)
		}
		if outOfSerialRange(conversationID) {
			return ErrConversationNotFound
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO messages (conversation_id, sender_id, text) VALUES ($1, $2, $3) RETURNING id`,
			conversationID, senderID, text,
		).Scan(&messageID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
				return ErrConversationNotFound
			}
			return fmt.Errorf("failed to insert message: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE conversations SET last_message = $1, last_message_time = CURRENT_TIMESTAMP WHERE id = $2`,
			text, conversationID,
		)
		if err != nil {
			return fmt.Errorf("failed to update conversation: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return ErrConversationNotFound
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	r.GetLogger().Debug("Message appended",
		zap.Int64("conversation_id", conversationID),
		zap.Int64("message_id", messageID),
	)
	return messageID, nil
}

// resolveUserIDs maps each known firebase uid to its user id
func resolveUserIDs(ctx context.Context, tx *sql.Tx, uids []string) (map[string]int64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, firebase_uid FROM users WHERE firebase_uid = ANY($1)`, pq.Array(uids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participants: %w", err)
	}
	defer rows.Close()

	resolved := make(map[string]int64, len(uids))
	for rows.Next() {
		var (
			id  int64
			uid string
		)
		if err := rows.Scan(&id, &uid); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		resolved[uid] = id
	}

	return resolved, rows.Err()
}
