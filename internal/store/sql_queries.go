package store

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/mlevchuk/noteapp/models"
)

// Column sets scanned by the repositories. The note set comes in two
// shapes: the full modern one and the legacy one for schemas that predate
// the favorite column.
var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}

	noteColumnsFull   = []string{"note_id", "title", "content", "favorite", "user_id", "created_at", "updated_at"}
	noteColumnsLegacy = []string{"note_id", "title", "content", "user_id", "created_at", "updated_at"}
)

func noteColumns(withFavorite bool) []string {
	if withFavorite {
		return noteColumnsFull
	}
	return noteColumnsLegacy
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(b squirrel.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

func buildCreateNoteQuery(b squirrel.StatementBuilderType, note models.Note, withFavorite bool) (string, []any, error) {
	return b.Insert("notes").
		Columns("title", "content", "user_id").
		Values(note.Title, note.Content, note.UserID).
		Suffix(returning(noteColumns(withFavorite))).
		ToSql()
}

func buildNotesByUserQuery(b squirrel.StatementBuilderType, userID int64, withFavorite bool) (string, []any, error) {
	return b.Select(noteColumns(withFavorite)...).
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildNoteByIDQuery(b squirrel.StatementBuilderType, noteID int64, withFavorite bool) (string, []any, error) {
	return b.Select(noteColumns(withFavorite)...).
		From("notes").
		Where(squirrel.Eq{"note_id": noteID}).
		ToSql()
}

func buildUpdateNoteQuery(b squirrel.StatementBuilderType, note models.Note, withFavorite bool) (string, []any, error) {
	return b.Update("notes").
		Set("title", note.Title).
		Set("content", note.Content).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"note_id": note.NoteID}).
		Suffix(returning(noteColumns(withFavorite))).
		ToSql()
}

func buildDeleteNoteQuery(b squirrel.StatementBuilderType, noteID int64) (string, []any, error) {
	return b.Delete("notes").
		Where(squirrel.Eq{"note_id": noteID}).
		ToSql()
}

func buildSetFavoriteQuery(b squirrel.StatementBuilderType, noteID int64, favorite bool) (string, []any, error) {
	return b.Update("notes").
		Set("favorite", favorite).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"note_id": noteID}).
		Suffix(returning(noteColumnsFull)).
		ToSql()
}
