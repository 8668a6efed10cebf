/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command gomlwe-demo runs a two-party exchange: Alice and Bob each
// generate a keypair, encrypt a message for the other's public key and
// decrypt what they receive.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lattice-project/gomlwe/pke"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug tracing of intermediate values")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scheme, err := pke.New(pke.NewParams1024(), log)
	if err != nil {
		log.Error("cannot configure scheme", "err", err)
		os.Exit(1)
	}

	alicePK, aliceSK, err := scheme.GenerateKeys()
	if err != nil {
		log.Error("cannot generate Alice's keypair", "err", err)
		os.Exit(1)
	}
	bobPK, bobSK, err := scheme.GenerateKeys()
	if err != nil {
		log.Error("cannot generate Bob's keypair", "err", err)
		os.Exit(1)
	}

	toBob := "Hey Bob, Alice here, how are you?"
	toAlice := "Hi Alice, all good, thanks for asking!"

	cipherForBob, err := scheme.Encrypt(toBob, bobPK)
	if err != nil {
		log.Error("cannot encrypt", "err", err)
		os.Exit(1)
	}
	cipherForAlice, err := scheme.Encrypt(toAlice, alicePK)
	if err != nil {
		log.Error("cannot encrypt", "err", err)
		os.Exit(1)
	}

	bobReads, err := scheme.Decrypt(cipherForBob, bobSK)
	if err != nil {
		log.Error("cannot decrypt", "err", err)
		os.Exit(1)
	}
	aliceReads, err := scheme.Decrypt(cipherForAlice, aliceSK)
	if err != nil {
		log.Error("cannot decrypt", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Bob received:   %q\n", bobReads)
	fmt.Printf("Alice received: %q\n", aliceReads)
}
