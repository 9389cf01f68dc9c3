// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

// commonNames validates person candidates: at least one word of a
// multi-word name must appear here.
var commonNames = map[string]struct{}{
	// First names
	"james": {}, "john": {}, "robert": {}, "michael": {}, "william": {}, "david": {},
	"richard": {}, "charles": {}, "joseph": {}, "thomas": {}, "christopher": {},
	"daniel": {}, "paul": {}, "mark": {}, "donald": {}, "steven": {}, "kenneth": {},
	"andrew": {}, "joshua": {}, "kevin": {}, "brian": {}, "george": {}, "edward": {},
	"ronald": {}, "timothy": {}, "jason": {}, "jeffrey": {}, "ryan": {}, "jacob": {},
	"gary": {}, "nicholas": {}, "eric": {}, "mary": {}, "patricia": {}, "jennifer": {},
	"linda": {}, "elizabeth": {}, "barbara": {}, "susan": {}, "jessica": {}, "sarah": {},
	"karen": {}, "nancy": {}, "lisa": {}, "betty": {}, "helen": {}, "sandra": {},
	"donna": {}, "carol": {}, "ruth": {}, "sharon": {}, "michelle": {}, "laura": {},
	"kimberly": {}, "deborah": {}, "dorothy": {},

	// Last names
	"smith": {}, "johnson": {}, "williams": {}, "brown": {}, "jones": {}, "garcia": {},
	"miller": {}, "davis": {}, "rodriguez": {}, "martinez": {}, "hernandez": {},
	"lopez": {}, "gonzalez": {}, "wilson": {}, "anderson": {}, "taylor": {},
	"moore": {}, "jackson": {}, "martin": {}, "lee": {}, "perez": {}, "thompson": {},
	"white": {}, "harris": {}, "sanchez": {}, "clark": {}, "ramirez": {}, "lewis": {},
	"robinson": {}, "walker": {}, "young": {}, "allen": {}, "king": {}, "wright": {},
	"scott": {}, "torres": {}, "nguyen": {}, "hill": {}, "flores": {},
}

// companyIndicators mark a candidate as an organization.
var companyIndicators = map[string]struct{}{
	"inc": {}, "incorporated": {}, "corp": {}, "corporation": {}, "company": {},
	"co": {}, "llc": {}, "ltd": {}, "limited": {}, "lp": {}, "llp": {},
	"partnership": {}, "associates": {}, "group": {}, "holdings": {},
	"enterprises": {}, "solutions": {}, "systems": {}, "technologies": {},
	"services": {}, "consulting": {}, "international": {}, "global": {},
	"national": {}, "regional": {}, "foundation": {}, "institute": {},
}
