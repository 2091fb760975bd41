package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	apperrors "hobbygraph/backend/pkg/errors"
)

// ============================================================================
// User Operations
// ============================================================================

// userReturn is the standard user projection shared by every read. Friends is
// collected from FRIEND relationships in either direction.
const userReturn = `
	RETURN u.id AS id, u.username AS username, u.age AS age,
	       coalesce(u.hobbies, []) AS hobbies,
	       [(u)-[:FRIEND]-(f:User) | f.id] AS friends,
	       coalesce(u.popularity_score, 0.0) AS popularity_score,
	       u.created_at AS created_at, u.updated_at AS updated_at
`

// CreateUser creates a user node with an empty friend set and a zero score
func (r *Repository) CreateUser(ctx context.Context, username string, age int, hobbies []string) (*User, error) {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	query := `
		CREATE (u:User {
			id: $id,
			username: $username,
			age: $age,
			hobbies: $hobbies,
			popularity_score: 0.0,
			created_at: datetime($now),
			updated_at: datetime($now)
		})
	` + userReturn

	result, err := session.Run(ctx, query, map[string]interface{}{
		"id":       id,
		"username": username,
		"age":      age,
		"hobbies":  hobbies,
		"now":      now,
	})
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("create user", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("create user", err)
	}

	user := userFromRecord(record)

	// A fresh user has no friends, but the recompute still runs so the score
	// is persisted through the same path as every other mutation.
	if _, err := r.RecomputePopularity(ctx, user.ID); err != nil {
		return nil, err
	}

	r.logger.Info("User created",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return &user, nil
}

// GetUser retrieves a single user by id
func (r *Repository) GetUser(ctx context.Context, userID string) (*User, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `MATCH (u:User {id: $userID})` + userReturn

	result, err := session.Run(ctx, query, map[string]interface{}{
		"userID": userID,
	})
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("get user", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.NewGraphQueryFailed("get user", err)
		}
		return nil, apperrors.NewUserNotFound(userID)
	}

	user := userFromRecord(result.Record())
	return &user, nil
}

// ListUsers retrieves every user, ordered by creation time so the graph
// projection iterates a stable sequence.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `MATCH (u:User)` + userReturn + `ORDER BY u.created_at, u.id`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("list users", err)
	}

	users := []User{}
	for result.Next(ctx) {
		users = append(users, userFromRecord(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewGraphQueryFailed("list users", err)
	}

	return users, nil
}

// UpdateUser applies a partial update, then recomputes the user and every
// direct friend: a hobby change shifts each neighbor's shared-hobby count.
func (r *Repository) UpdateUser(ctx context.Context, userID string, patch UserPatch) (*User, error) {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	now := time.Now().UTC().Format(time.RFC3339)

	query := `
		MATCH (u:User {id: $userID})
		SET u.username = coalesce($username, u.username),
		    u.age = coalesce($age, u.age),
		    u.hobbies = coalesce($hobbies, u.hobbies),
		    u.updated_at = datetime($now)
	` + userReturn

	params := map[string]interface{}{
		"userID":   userID,
		"username": nil,
		"age":      nil,
		"hobbies":  nil,
		"now":      now,
	}
	if patch.Username != nil {
		params["username"] = *patch.Username
	}
	if patch.Age != nil {
		params["age"] = *patch.Age
	}
	if patch.Hobbies != nil {
		params["hobbies"] = *patch.Hobbies
	}

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("update user", err)
	}

	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, apperrors.NewGraphQueryFailed("update user", err)
		}
		return nil, apperrors.NewUserNotFound(userID)
	}

	updated := userFromRecord(result.Record())

	if err := r.recomputeAround(ctx, updated.ID, updated.Friends); err != nil {
		return nil, err
	}

	// Re-read so the response carries the recomputed score
	return r.GetUser(ctx, userID)
}

// DeleteUser removes a user permanently. A user that is still linked cannot
// be deleted; callers must unlink every edge first.
func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		check, err := tx.Run(ctx, `
			MATCH (u:User {id: $userID})
			RETURN u.id AS id, count { (u)-[:FRIEND]-(:User) } AS degree
		`, map[string]interface{}{"userID": userID})
		if err != nil {
			return nil, err
		}

		if !check.Next(ctx) {
			if err := check.Err(); err != nil {
				return nil, err
			}
			return nil, apperrors.NewUserNotFound(userID)
		}

		degree := getIntFromRecord(check.Record(), "degree")
		if degree > 0 {
			return nil, apperrors.NewStillLinked(userID, degree)
		}

		_, err = tx.Run(ctx, `
			MATCH (u:User {id: $userID})
			DELETE u
		`, map[string]interface{}{"userID": userID})
		return nil, err
	})
	if err != nil {
		if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) || apperrors.IsErrorType(err, apperrors.ErrorTypeConflict) {
			return err
		}
		return apperrors.NewGraphQueryFailed("delete user", err)
	}

	r.logger.Info("User deleted", zap.String("user_id", userID))
	return nil
}
