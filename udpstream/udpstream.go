// Package udpstream streams decoded CCSDS transfer frames to an
// external collaborator over UDP, the optional output path spec.md §6
// names alongside the bit-file output. Grounded on the teacher's
// dvbs.StreamToIQ: a producer goroutine pumping values over a channel
// until the source is exhausted or the channel is closed, paired with
// utils.WaitForSignal for graceful shutdown on SIGINT/SIGTERM.
package udpstream

import (
	"net"

	"ccsdsdemod/frame"
)

// Stream sends every OK frame's Data over a UDP socket to addr
// ("host:port"), one datagram per frame, until frames is closed. It
// mirrors the teacher's channel-pump shape (StreamToIQ) generalized
// from "IQ samples to an SDR" to "decoded frames to a UDP listener."
func Stream(addr string, frames <-chan frame.Frame) error {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	for f := range frames {
		if !f.OK {
			continue
		}
		if _, err := conn.Write(f.Data); err != nil {
			return err
		}
	}
	return nil
}

// Pump reads frames from a frame.Decoder and feeds them into a
// channel for Stream (or any other consumer) to drain, closing the
// channel once the decoder is exhausted — the same
// read-until-exhausted-then-close shape as dvbs.StreamToIQ.
func Pump(dec *frame.Decoder) <-chan frame.Frame {
	ch := make(chan frame.Frame)
	go func() {
		defer close(ch)
		for {
			f, ok := dec.Next()
			if !ok {
				return
			}
			ch <- f
		}
	}()
	return ch
}
