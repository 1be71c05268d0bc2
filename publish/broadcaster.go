// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/custodyd/event"
	"github.com/bitmark-inc/custodyd/fault"
	"github.com/bitmark-inc/custodyd/messagebus"
	"github.com/bitmark-inc/custodyd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	bus     *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, bus *messagebus.Queue) error {

	log := logger.New("broadcaster")
	brdc.log = log
	brdc.bus = bus

	log.Info("initialising…")

	if nil == bus {
		return fault.MissingParameters
	}

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for events and publish them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := brdc.bus.Chan()

loop:
	for {
		log.Debug("waiting…")
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			command, data, err := frames(item)
			if nil != err {
				log.Errorf("from: %s  encode error: %s", item.From, err)
				continue
			}
			log.Debugf("sending: %s  data: %s", command, data)
			brdc.process(brdc.socket4, command, data)
			brdc.process(brdc.socket6, command, data)
		}
	}
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

// frames - the two parts of a published message
func frames(item messagebus.Message) (string, []byte, error) {
	r, ok := item.Item.(event.Record)
	if !ok {
		return "", nil, fault.UnknownEventType
	}
	data, err := json.Marshal(r)
	if nil != err {
		return "", nil, err
	}
	return r.Type, data, nil
}

// send one event, subscribers that are not keeping up miss it
func (brdc *broadcaster) process(socket *zmq.Socket, command string, data []byte) {
	if nil == socket {
		return
	}

	_, err := socket.Send(command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", command, err)
		return
	}
	_, err = socket.SendBytes(data, zmq.DONTWAIT)
	if nil != err {
		brdc.log.Warnf("send: %s  data error: %s", command, err)
	}
}
