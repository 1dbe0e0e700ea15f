package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/zeebo/bitfield"
	"github.com/zeebo/errs"
	"github.com/zeebo/mon"
	"github.com/zeebo/mon/monhandler"
	"github.com/zeebo/pcg"
)

var (
	layouts  = flag.Int("layouts", 100000, "number of layouts to round trip")
	fields   = flag.Int("fields", 8, "number of fields per layout")
	maxWidth = flag.Int("max_width", 16, "maximum bits per field")
	wait     = flag.Bool("wait", false, "keep serving monitor stats after the run")

	rng pcg.T
)

func intn(n int) int { return int(rng.Uint32n(uint32(n))) }

func stats() {
	defer fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	mon.Times(func(name string, state *mon.State) bool {
		sum, avg := state.Average()
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n",
			name, state.Total(), time.Duration(sum), time.Duration(avg))
		return true
	})
}

func main() {
	flag.Parse()

	defer stats()
	go http.ListenAndServe(":8080", monhandler.Handler{})

	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}

	if *wait {
		fmt.Println("done. waiting for ctrl+c...")
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT)
		<-ch
		fmt.Println()
	}
}

func run() error {
	totalBytes := 0

	for i := 0; i < *layouts; i++ {
		if prog := *layouts / 10; prog > 0 && i > 0 && i%prog == 0 {
			fmt.Printf("progress: %0.2f\n", 100*float64(i)/float64(*layouts))
			stats()
		}

		widths := make([]uint, 1+intn(*fields))
		values := make([]uint64, len(widths))
		for j := range widths {
			widths[j] = uint(1 + intn(*maxWidth))
			values[j] = rng.Uint64() & (1<<widths[j] - 1)
		}

		sender, err := bitfield.New(widths...)
		if err != nil {
			return errs.Wrap(err)
		}
		if err := sender.AssignAll(values); err != nil {
			return errs.Wrap(err)
		}

		for _, order := range []bitfield.Order{bitfield.Little, bitfield.Big} {
			buf, err := sender.ExportBytes(order)
			if err != nil {
				return errs.Wrap(err)
			}
			totalBytes += len(buf)

			receiver, err := bitfield.New(widths...)
			if err != nil {
				return errs.Wrap(err)
			}
			if err := receiver.FromBytes(buf, order); err != nil {
				return errs.Wrap(err)
			}

			for j, exp := range values {
				if got, ok := receiver.At(j); !ok || got != exp {
					return errs.New("%v mismatch at field %d: %d != %d in %s",
						order, j, got, exp, receiver)
				}
			}
		}
	}

	fmt.Printf("round tripped %d layouts, %d bytes on the wire\n", *layouts, totalBytes)
	return nil
}
