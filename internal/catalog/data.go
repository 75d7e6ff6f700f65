package catalog

// Excursions offered by the agency. Descriptions are traveler-facing and kept
// in French like the rest of the copy.
var activities = []Activity{
	{
		ID:          "1",
		Title:       "Excursion à Chefchaouen",
		Description: "Découvrez la ville bleue de Chefchaouen lors d'une journée complète d'exploration. Cette ville unique située dans les montagnes du Rif est connue pour ses bâtiments bleus et sa médina pittoresque.",
		Location:    "Chefchaouen, Maroc",
		Price:       65,
		Duration:    "1 journée",
		Types:       []string{"cultural", "nature"},
		Rating:      4.8,
		GroupSize:   GroupRange{Min: 2, Max: 15},
	},
	{
		ID:          "2",
		Title:       "Excursion aux cascades d'Akchour",
		Description: "Randonnée aux cascades d'Akchour dans le Parc National de Talassemtane. Profitez de paysages montagneux spectaculaires et de baignades dans des eaux cristallines.",
		Location:    "Akchour, Maroc",
		Price:       75,
		Duration:    "1 journée",
		Types:       []string{"adventure", "nature"},
		Rating:      4.7,
		GroupSize:   GroupRange{Min: 4, Max: 12},
	},
	{
		ID:          "3",
		Title:       "Tour culinaire de Tanger",
		Description: "Explorez les saveurs de Tanger avec ce tour gastronomique qui vous emmène dans les meilleurs restaurants et stands de street food de la ville.",
		Location:    "Tanger, Maroc",
		Price:       55,
		Duration:    "4 heures",
		Types:       []string{"gastronomy", "cultural"},
		Rating:      4.9,
		GroupSize:   GroupRange{Min: 2, Max: 8},
	},
	{
		ID:          "4",
		Title:       "Excursion à Asilah",
		Description: "Visitez la charmante ville côtière d'Asilah connue pour ses murs blancs, son art de rue et ses plages magnifiques.",
		Location:    "Asilah, Maroc",
		Price:       60,
		Duration:    "1 journée",
		Types:       []string{"cultural", "relaxation"},
		Rating:      4.6,
		GroupSize:   GroupRange{Min: 4, Max: 15},
	},
	{
		ID:          "5",
		Title:       "Safari en 4x4 dans le désert",
		Description: "Aventurez-vous dans un safari en 4x4 à travers les dunes et les paysages désertiques du Maroc. Inclut un dîner sous les étoiles.",
		Location:    "Agafay, Maroc",
		Price:       120,
		Duration:    "8 heures",
		Types:       []string{"adventure", "nature"},
		Rating:      4.9,
		GroupSize:   GroupRange{Min: 2, Max: 6},
	},
	{
		ID:          "6",
		Title:       "Croisière sur le détroit de Gibraltar",
		Description: "Naviguez sur le détroit de Gibraltar et observez des dauphins et autres animaux marins dans leur habitat naturel.",
		Location:    "Tanger, Maroc",
		Price:       90,
		Duration:    "3 heures",
		Types:       []string{"relaxation", "nature"},
		Rating:      4.7,
		GroupSize:   GroupRange{Min: 5, Max: 20},
	},
	{
		ID:          "7",
		Title:       "Visite des grottes d'Hercule",
		Description: "Explorez les légendaires grottes d'Hercule, un lieu riche en mythologie et d'une beauté naturelle exceptionnelle.",
		Location:    "Cap Spartel, Maroc",
		Price:       40,
		Duration:    "2 heures",
		Types:       []string{"cultural", "nature"},
		Rating:      4.5,
		GroupSize:   GroupRange{Min: 2, Max: 15},
	},
	{
		ID:          "8",
		Title:       "Atelier de cuisine marocaine",
		Description: "Apprenez à préparer des plats traditionnels marocains comme le tajine et le couscous lors d'un cours avec un chef local.",
		Location:    "Tanger, Maroc",
		Price:       70,
		Duration:    "4 heures",
		Types:       []string{"gastronomy", "cultural"},
		Rating:      4.8,
		GroupSize:   GroupRange{Min: 2, Max: 10},
	},
}

var cities = []City{
	{
		ID:          "djerba",
		Name:        "Djerba",
		Description: "Île paradisiaque avec ses plages et sa culture",
		Coordinates: [2]float64{33.8075, 10.8451},
	},
	{
		ID:          "tozeur",
		Name:        "Tozeur",
		Description: "Porte du désert avec ses oasis et dunes",
		Coordinates: [2]float64{33.9197, 8.1336},
	},
	{
		ID:          "douz",
		Name:        "Douz",
		Description: "La porte du Sahara",
		Coordinates: [2]float64{33.4662, 9.0203},
	},
	{
		ID:          "tataouine",
		Name:        "Tataouine",
		Description: "Célèbre pour ses ksour berbères",
		Coordinates: [2]float64{32.9297, 10.4518},
	},
}
