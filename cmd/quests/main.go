// Command quests solves the grid and graph quests from their input files
// and prints one answer per part.
//
//	quests            # every quest
//	quests 13         # a single quest
//	quests all --inputs ./data --log-level debug
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
