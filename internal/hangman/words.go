package hangman

// Word/hint dictionaries per language. Words are upper-case because guesses
// are normalized to upper-case before matching.
var dictionaries = map[string]map[string]string{
	"EN": {
		"GALAXY":   "A system of billions of stars held together by gravity.",
		"PYRAMID":  "Ancient monument with a square base and triangular sides.",
		"VOLCANO":  "A mountain that can erupt with lava and ash.",
		"COMPASS":  "Tool that always points north.",
		"LANTERN":  "Portable light, often carried on a handle.",
		"HARBOR":   "Sheltered water where ships dock.",
		"THUNDER":  "The sound that follows lightning.",
		"ORCHARD":  "A field planted with fruit trees.",
		"GLACIER":  "A slow-moving river of ice.",
		"SADDLE":   "Seat strapped to a horse's back.",
		"ANCHOR":   "Heavy object that keeps a ship in place.",
		"MIRROR":   "It shows you your own reflection.",
		"CACTUS":   "Spiky plant that thrives in the desert.",
		"BRIDGE":   "Structure that carries a road over water.",
		"CASTLE":   "Fortified residence of a medieval lord.",
		"PENGUIN":  "Flightless bird that swims in icy seas.",
		"WHISTLE":  "Small device that makes a shrill sound when blown.",
		"JUNGLE":   "Dense tropical forest.",
		"COMPUTER": "Machine that executes programs.",
		"LIBRARY":  "Building full of books to borrow.",
	},
	"FR": {
		"CHATEAU":  "Résidence fortifiée d'un seigneur.",
		"MONTAGNE": "Relief élevé, souvent enneigé au sommet.",
		"FROMAGE":  "Produit laitier affiné, fierté nationale.",
		"BALEINE":  "Le plus grand mammifère marin.",
		"MOULIN":   "Bâtiment qui moud le grain grâce au vent ou à l'eau.",
		"JARDIN":   "Espace où l'on cultive fleurs et légumes.",
		"ORAGE":    "Tempête avec éclairs et tonnerre.",
		"PHARE":    "Tour lumineuse qui guide les navires.",
		"RENARD":   "Canidé roux réputé rusé.",
		"VIGNOBLE": "Terrain planté de vignes.",
		"CHAPEAU":  "Se porte sur la tête.",
		"MIROIR":   "Il montre votre reflet.",
		"PAPILLON": "Insecte aux ailes colorées.",
		"HORLOGE":  "Elle donne l'heure sur les clochers.",
		"NAVIRE":   "Grand bateau de mer.",
		"BOUSSOLE": "Instrument qui indique le nord.",
		"CHEMINEE": "On y fait du feu en hiver.",
		"ECUREUIL": "Petit rongeur roux amateur de noisettes.",
		"TONNEAU":  "Récipient en bois pour le vin.",
		"LANTERNE": "Lampe portative.",
	},
}

// Languages returns the available dictionary codes in menu order.
func Languages() []string {
	return []string{"EN", "FR"}
}
