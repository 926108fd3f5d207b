package sqlite

import (
	"database/sql"

	"funknotes/internal/domain"
)

// projectTx writes one project inside a single transaction
type projectTx struct {
	tx *sql.Tx
}

// writeProject inserts the header, objects, items and history of p
func (t *projectTx) writeProject(p *domain.Project) error {
	if err := t.setMeta("schema_version", schemaVersion); err != nil {
		return err
	}
	if _, err := t.tx.Exec(`INSERT INTO project (name, idx) VALUES (?, ?)`, p.Name, p.Index); err != nil {
		return err
	}

	for pos, obj := range p.Objects {
		id, err := t.insertObject(pos, obj.Name)
		if err != nil {
			return err
		}
		for i, item := range obj.Items {
			if err := t.insertItem(id, i, item); err != nil {
				return err
			}
		}
		for i, entry := range obj.History {
			if err := t.insertHistory(id, i, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// setMeta stores a metadata key
func (t *projectTx) setMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// insertObject adds an object row and returns its id
func (t *projectTx) insertObject(position int, name string) (int64, error) {
	res, err := t.tx.Exec(`INSERT INTO objects (position, name) VALUES (?, ?)`, position, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertItem adds an item row
func (t *projectTx) insertItem(objectID int64, position int, item domain.Item) error {
	_, err := t.tx.Exec(`
		INSERT INTO items (object_id, position, timestamp, text)
		VALUES (?, ?, ?, ?)
	`, objectID, position, item.Timestamp, item.Text)
	return err
}

// insertHistory adds a history row
func (t *projectTx) insertHistory(objectID int64, position int, entry domain.HistoryEntry) error {
	_, err := t.tx.Exec(`
		INSERT INTO history (object_id, position, action, timestamp, text)
		VALUES (?, ?, ?, ?, ?)
	`, objectID, position, string(entry.Action), entry.Timestamp, entry.Text)
	return err
}

// Commit commits the transaction
func (t *projectTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *projectTx) Rollback() error {
	return t.tx.Rollback()
}
