// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/escrow"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/poe"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/trade"
)

// Services - the backends the RPC layer dispatches into
type Services struct {
	Registry *registry.Registry
	Market   *trade.Market
	Claims   *poe.Registry
	Book     *escrow.Book
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log      *logger.L
	listener net.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCount counter.Counter

// Initialise - start serving on the listen address
func Initialise(listenAddress string, services Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	server := rpc.NewServer()

	// the exposed method prefix is the registered type name
	for _, service := range []interface{}{
		&Kitties{log: log, registry: services.Registry},
		&Market{log: log, market: services.Market},
		&Claims{log: log, claims: services.Claims},
		&Depository{log: log, book: services.Book},
	} {
		if err := server.Register(service); nil != err {
			return err
		}
	}

	listener, err := net.Listen("tcp", listenAddress)
	if nil != err {
		return err
	}
	globalData.listener = listener
	log.Infof("listening on: %s", listener.Addr())

	go acceptLoop(log, server, listener)

	globalData.initialised = true
	return nil
}

// Address - the bound listen address
//
// needed when the configured address has port zero
func Address() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.listener {
		return ""
	}
	return globalData.listener.Addr().String()
}

// Finalise - stop listening
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Close()
	globalData.listener = nil
	globalData.initialised = false
	return nil
}

// one JSON codec per connection
func acceptLoop(log *logger.L, server *rpc.Server, listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if nil != err {
			log.Infof("accept ended: %s", err)
			return
		}

		log.Debugf("connections: %d", connectionCount.Increment())
		go func() {
			defer func() {
				log.Debugf("connections: %d", connectionCount.Decrement())
			}()

			codec := jsonrpc.NewServerCodec(conn)
			defer codec.Close()
			server.ServeCodec(codec)
		}()
	}
}
