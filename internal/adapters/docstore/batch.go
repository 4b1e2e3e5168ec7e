package docstore

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type batchOp struct {
	coll   string
	id     string
	data   Document
	merge  bool
	delete bool
}

// Batch collects writes that are committed together in one transaction.
// A Batch is not safe for concurrent use.
type Batch struct {
	store *Store
	ops   []batchOp
}

// Set queues a write of data under id. See Collection.Set for merge.
func (b *Batch) Set(coll *Collection, id string, data Document, merge bool) *Batch {
	b.ops = append(b.ops, batchOp{coll: coll.name, id: id, data: data, merge: merge})
	return b
}

// Delete queues the removal of a document.
func (b *Batch) Delete(coll *Collection, id string) *Batch {
	b.ops = append(b.ops, batchOp{coll: coll.name, id: id, delete: true})
	return b
}

// Len returns the number of queued writes.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Commit applies every queued write or none of them. Committing an empty
// batch does nothing.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.ops) == 0 {
		return nil
	}
	now := b.store.now()
	return b.store.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, op := range b.ops {
			var err error
			if op.delete {
				err = deleteDoc(ctx, tx, op.coll, op.id)
			} else {
				err = setDoc(ctx, tx, op.coll, op.id, op.data, op.merge, now)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
