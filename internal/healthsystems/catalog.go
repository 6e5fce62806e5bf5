package healthsystems

// Item describes one body area in the reference catalog. The area name doubles
// as the keyword-matching input when items are grouped by category.
type Item struct {
	Area            string `json:"area"`
	Symptoms        string `json:"symptoms"`
	Causes          string `json:"causes"`
	Recommendations string `json:"recommendations"`
}

// Catalog is the seeded reference content served to the client. It is
// read-only and shipped with the binary rather than stored in the database.
var Catalog = []Item{
	{
		Area:            "Stress og nervesystem",
		Symptoms:        "Uro, anspenthet, vansker med å slappe av, grunn pust.",
		Causes:          "Langvarig belastning uten nok restitusjon holder nervesystemet i beredskap.",
		Recommendations: "Rolig pust, korte pauser gjennom dagen og faste kveldsrutiner.",
	},
	{
		Area:            "Søvnkvalitet",
		Symptoms:        "Vansker med innsovning, oppvåkninger om natten, trøtthet på dagtid.",
		Causes:          "Høy aktivering om kvelden, skjermbruk sent og uregelmessig døgnrytme.",
		Recommendations: "Fast leggetid, dempet lys siste timen og skjermfri kveld.",
	},
	{
		Area:            "Tarm og fordøyelse",
		Symptoms:        "Oppblåsthet, ujevn mage, ubehag etter måltider.",
		Causes:          "Ubalanse i tarmfloraen og måltider som spises i stress.",
		Recommendations: "Regelmessige måltider, fiberrik mat og ro rundt måltidene.",
	},
	{
		Area:            "Mage og matintoleranse",
		Symptoms:        "Ubehag knyttet til enkelte matvarer, varierende form fra dag til dag.",
		Causes:          "Sensitiv fordøyelse som reagerer på enkelte råvarer eller store porsjoner.",
		Recommendations: "Før en enkel matdagbok og test én endring om gangen.",
	},
	{
		Area:            "Hormonbalanse",
		Symptoms:        "Energisvingninger, humørsvingninger, endret appetitt.",
		Causes:          "Stress over tid påvirker samspillet mellom binyrene og resten av hormonsystemet.",
		Recommendations: "Stabil døgnrytme, jevne måltider og moderat trening.",
	},
	{
		Area:            "Skjoldbruskkjertel",
		Symptoms:        "Vedvarende trøtthet, frysninger, tungt å komme i gang.",
		Causes:          "Lavt stoffskifte kan gi lavere tempo i hele kroppen.",
		Recommendations: "Prioriter hvile og ta opp vedvarende symptomer med lege.",
	},
	{
		Area:            "Muskler og ledd",
		Symptoms:        "Stivhet om morgenen, ømme punkter, redusert bevegelighet.",
		Causes:          "Statisk arbeid og spenninger som har satt seg over tid.",
		Recommendations: "Daglige tøyninger, variert bevegelse og varme på stive områder.",
	},
	{
		Area:            "Nakke og skuldre",
		Symptoms:        "Spenninger, hodepine som starter i nakken, verkende skuldre.",
		Causes:          "Mye skjermarbeid og høye skuldre under stress.",
		Recommendations: "Hev skjermen til øyehøyde og ta bevegelsespauser hver time.",
	},
	{
		Area:            "Immunforsvar",
		Symptoms:        "Hyppige forkjølelser, lang restitusjon, lavgradig betennelse.",
		Causes:          "Lite søvn og vedvarende stress svekker immunresponsen.",
		Recommendations: "Prioriter søvn, dagslys og nok protein i kosten.",
	},
	{
		Area:            "Allergi og overfølsomhet",
		Symptoms:        "Tett nese, kløe, reaksjoner på pollen eller mat.",
		Causes:          "Et immunforsvar i alarmberedskap reagerer kraftigere på vanlige stoffer.",
		Recommendations: "Kartlegg utløsere og demp total belastning i allergisesongen.",
	},
	{
		Area:            "Sirkulasjon",
		Symptoms:        "Kalde hender og føtter, tung kropp etter stillesitting.",
		Causes:          "Lite variert bevegelse gjennom dagen gir tregere sirkulasjon.",
		Recommendations: "Korte gåturer, trappegang og å reise seg jevnlig.",
	},
	{
		Area:            "Pust og respirasjon",
		Symptoms:        "Grunn pust, sukking, følelse av å ikke få nok luft.",
		Causes:          "Stressmønstre flytter pusten høyt opp i brystet.",
		Recommendations: "Tren lav magepust noen minutter morgen og kveld.",
	},
}
