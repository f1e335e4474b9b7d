/*
Copyright 2026 the GoREST Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jinzhu/inflection"
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/gorest-qa/conformance/pkg/fixtures"
)

var ErrUnknownKind = errors.New("unknown fixture kind")

type options struct {
	kind   string
	count  int
	userID int
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.kind, "kind", "user", "Fixture kind, user or post.")
	f.IntVar(&o.count, "count", 1, "Number of fixtures to print.")
	f.IntVar(&o.userID, "user-id", 0, "Owning user of generated posts, omitted when zero.")
}

func generate(w io.Writer, o *options) error {
	var next func() any

	switch o.kind {
	case "user":
		next = func() any { return fixtures.GenerateUser() }
	case "post":
		var userID *int
		if o.userID != 0 {
			userID = ptr.To(o.userID)
		}

		next = func() any { return fixtures.GeneratePost(userID) }
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, o.kind)
	}

	encoder := json.NewEncoder(w)

	for range o.count {
		if err := encoder.Encode(next()); err != nil {
			return fmt.Errorf("encoding %s: %w", o.kind, err)
		}
	}

	return nil
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	if err := generate(os.Stdout, &o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	noun := o.kind
	if o.count != 1 {
		noun = inflection.Plural(noun)
	}

	fmt.Fprintf(os.Stderr, "generated %d %s\n", o.count, noun)
}
