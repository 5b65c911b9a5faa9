// Command amfdemo runs scenario A from spec.md §8 end to end against freshly
// generated keys, logging each step, to give an operator a quick sanity
// check that the library is wired together correctly.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/amf-labs/amf-franking/amf"
	"github.com/amf-labs/amf-franking/group"
)

func main() {
	message := flag.String("message", "hello world!", "Message to frank, verify, and judge")
	verbose := flag.Bool("verbose", false, "Enable debug-level logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	sender, err := amf.KeyGen(group.RoleSender)
	if err != nil {
		log.Fatal().Err(err).Msg("keygen sender failed")
	}
	recipient, err := amf.KeyGen(group.RoleRecipient)
	if err != nil {
		log.Fatal().Err(err).Msg("keygen recipient failed")
	}
	judge, err := amf.KeyGen(group.RoleJudge)
	if err != nil {
		log.Fatal().Err(err).Msg("keygen judge failed")
	}
	log.Debug().Msg("generated sender, recipient, and judge key pairs")

	m := []byte(*message)
	sig, err := amf.Frank(sender.Private, sender.Public, recipient.Public, judge.Public, m)
	if err != nil {
		log.Fatal().Err(err).Msg("frank failed")
	}
	log.Info().Str("message", *message).Msg("franked")

	verified := amf.Verify(recipient.Private, sender.Public, recipient.Public, judge.Public, m, sig)
	log.Info().Bool("result", verified).Msg("recipient verify")

	judged := amf.Judge(judge.Private, sender.Public, recipient.Public, judge.Public, m, sig)
	log.Info().Bool("result", judged).Msg("judge check")

	encoded, err := sig.Marshal()
	if err != nil {
		log.Fatal().Err(err).Msg("serialize failed")
	}
	log.Info().Int("bytes", len(encoded)).Msg("signature encoded")

	if !verified || !judged {
		log.Fatal().Msg("demo signature unexpectedly failed verification or judging")
	}
}
