// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - a pending write set
//
// writes are buffered in a batch and only reach the database on
// Commit; abandoning the transaction before Commit leaves the
// database untouched
type Transaction struct {
	batch *leveldb.Batch
}

// NewTransaction - create an empty write set
func NewTransaction() *Transaction {
	return &Transaction{
		batch: new(leveldb.Batch),
	}
}

// Put - buffer a key/value store to a pool
func (trx *Transaction) Put(p *PoolHandle, key []byte, value []byte) {
	trx.batch.Put(p.prefixKey(key), value)
}

// PutN - buffer a uint64 store as an 8 byte big endian record
func (trx *Transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.batch.Put(p.prefixKey(key), buffer)
}

// Delete - buffer a key removal from a pool
func (trx *Transaction) Delete(p *PoolHandle, key []byte) {
	trx.batch.Delete(p.prefixKey(key))
}

// Commit - atomically apply the whole write set
//
// a database write failure at this point is unrecoverable
func (trx *Transaction) Commit() {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("transaction.Commit nil database")
		return
	}
	err := poolData.db.Write(trx.batch, nil)
	logger.PanicIfError("transaction.Commit", err)
	trx.batch.Reset()
}
