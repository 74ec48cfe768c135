package alias

// BuiltinEntries is the shipped nickname table. Entity IDs match the seed
// dataset loaded into the local index by cmd/seed-entities.
var BuiltinEntries = []Entry{
	// Clubs
	{EntityID: "club-tottenham", Aliases: []string{"spurs", "lilywhites"}},
	{EntityID: "club-arsenal", Aliases: []string{"gunners", "the arsenal"}},
	{EntityID: "club-man-utd", Aliases: []string{"red devils", "man u", "united"}},
	{EntityID: "club-man-city", Aliases: []string{"citizens", "city", "sky blues"}},
	{EntityID: "club-liverpool", Aliases: []string{"reds", "pool", "lfc"}},
	{EntityID: "club-chelsea", Aliases: []string{"blues", "pensioners"}},
	{EntityID: "club-newcastle", Aliases: []string{"magpies", "toon"}},
	{EntityID: "club-west-ham", Aliases: []string{"hammers", "irons"}},
	{EntityID: "club-everton", Aliases: []string{"toffees"}},
	{EntityID: "club-bayern", Aliases: []string{"bayern", "fcb", "die roten"}},
	{EntityID: "club-dortmund", Aliases: []string{"bvb", "die borussen"}},
	{EntityID: "club-barcelona", Aliases: []string{"barca", "blaugrana"}},
	{EntityID: "club-real-madrid", Aliases: []string{"los blancos", "merengues"}},
	{EntityID: "club-atletico", Aliases: []string{"atleti", "colchoneros"}},
	{EntityID: "club-juventus", Aliases: []string{"juve", "old lady", "bianconeri"}},
	{EntityID: "club-inter", Aliases: []string{"nerazzurri"}},
	{EntityID: "club-milan", Aliases: []string{"rossoneri"}},
	{EntityID: "club-psg", Aliases: []string{"psg", "les parisiens"}},

	// Players
	{EntityID: "player-ronaldo", Aliases: []string{"cr7"}},
	{EntityID: "player-messi", Aliases: []string{"leo", "la pulga"}},
	{EntityID: "player-ibrahimovic", Aliases: []string{"zlatan", "ibra"}},
	{EntityID: "player-beckham", Aliases: []string{"becks", "golden balls"}},
	{EntityID: "player-gascoigne", Aliases: []string{"gazza"}},
	{EntityID: "player-aguero", Aliases: []string{"kun"}},
	{EntityID: "player-lewandowski", Aliases: []string{"lewy"}},
	{EntityID: "player-rooney", Aliases: []string{"wazza"}},
}
