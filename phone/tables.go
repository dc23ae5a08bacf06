package phone

import "regexp"

// prefixPattern maps a calling-code prefix regex, anchored at the start
// of the normalized digit string, to a country.
type prefixPattern struct {
	pattern     *regexp.Regexp
	countryCode string
}

// callingCodeMapping buckets ordered prefix patterns by the first digit
// of the number. The lists are hand-ordered so that longer, more specific
// prefixes are tried before shorter ones sharing the same lead digits,
// since multiple countries can share an international calling code.
var callingCodeMapping = map[byte][]prefixPattern{
	'1': {
		{pattern: regexp.MustCompile(`^1(204|226|236|249|250|289|306|343|365|387|403|416|418|431|437|438|450|506|514|519|548|579|581|587|600|604|613|622|633|639|644|647|655|672|677|688|705|709|742|778|780|782|807|819|825|867|873|902|905)`), countryCode: "CA"},
		{pattern: regexp.MustCompile(`^1268`), countryCode: "AG"},
		{pattern: regexp.MustCompile(`^1264`), countryCode: "AI"},
		{pattern: regexp.MustCompile(`^1684`), countryCode: "AS"},
		{pattern: regexp.MustCompile(`^1246`), countryCode: "BB"},
		{pattern: regexp.MustCompile(`^1441`), countryCode: "BM"},
		{pattern: regexp.MustCompile(`^1242`), countryCode: "BS"},
		{pattern: regexp.MustCompile(`^1767`), countryCode: "DM"},
		{pattern: regexp.MustCompile(`^1(809|829|849)`), countryCode: "DO"},
		{pattern: regexp.MustCompile(`^1473`), countryCode: "GD"},
		{pattern: regexp.MustCompile(`^1671`), countryCode: "GU"},
		{pattern: regexp.MustCompile(`^1876`), countryCode: "JM"},
		{pattern: regexp.MustCompile(`^1869`), countryCode: "KN"},
		{pattern: regexp.MustCompile(`^1345`), countryCode: "KY"},
		{pattern: regexp.MustCompile(`^1758`), countryCode: "LC"},
		{pattern: regexp.MustCompile(`^1670`), countryCode: "MP"},
		{pattern: regexp.MustCompile(`^1664`), countryCode: "MS"},
		{pattern: regexp.MustCompile(`^1(939|787)`), countryCode: "PR"},
		{pattern: regexp.MustCompile(`^1721`), countryCode: "SX"},
		{pattern: regexp.MustCompile(`^1649`), countryCode: "TC"},
		{pattern: regexp.MustCompile(`^1868`), countryCode: "TT"},
		{pattern: regexp.MustCompile(`^1784`), countryCode: "VC"},
		{pattern: regexp.MustCompile(`^1284`), countryCode: "VG"},
		{pattern: regexp.MustCompile(`^1340`), countryCode: "VI"},
		{pattern: regexp.MustCompile(`^1`), countryCode: "US"},
	},
	'2': {
		{pattern: regexp.MustCompile(`^20`), countryCode: "EG"},
		{pattern: regexp.MustCompile(`^211`), countryCode: "SS"},
		{pattern: regexp.MustCompile(`^212(5288|5289)`), countryCode: "EH"},
		{pattern: regexp.MustCompile(`^212`), countryCode: "MA"},
		{pattern: regexp.MustCompile(`^213`), countryCode: "DZ"},
		{pattern: regexp.MustCompile(`^216`), countryCode: "TN"},
		{pattern: regexp.MustCompile(`^218`), countryCode: "LY"},
		{pattern: regexp.MustCompile(`^220`), countryCode: "GM"},
		{pattern: regexp.MustCompile(`^221`), countryCode: "SN"},
		{pattern: regexp.MustCompile(`^222`), countryCode: "MR"},
		{pattern: regexp.MustCompile(`^223`), countryCode: "ML"},
		{pattern: regexp.MustCompile(`^224`), countryCode: "GN"},
		{pattern: regexp.MustCompile(`^225`), countryCode: "CI"},
		{pattern: regexp.MustCompile(`^226`), countryCode: "BF"},
		{pattern: regexp.MustCompile(`^227`), countryCode: "NE"},
		{pattern: regexp.MustCompile(`^228`), countryCode: "TG"},
		{pattern: regexp.MustCompile(`^229`), countryCode: "BJ"},
		{pattern: regexp.MustCompile(`^230`), countryCode: "MU"},
		{pattern: regexp.MustCompile(`^231`), countryCode: "LR"},
		{pattern: regexp.MustCompile(`^232`), countryCode: "SL"},
		{pattern: regexp.MustCompile(`^233`), countryCode: "GH"},
		{pattern: regexp.MustCompile(`^234`), countryCode: "NG"},
		{pattern: regexp.MustCompile(`^235`), countryCode: "TD"},
		{pattern: regexp.MustCompile(`^236`), countryCode: "CF"},
		{pattern: regexp.MustCompile(`^237`), countryCode: "CM"},
		{pattern: regexp.MustCompile(`^238`), countryCode: "CV"},
		{pattern: regexp.MustCompile(`^239`), countryCode: "ST"},
		{pattern: regexp.MustCompile(`^240`), countryCode: "GQ"},
		{pattern: regexp.MustCompile(`^241`), countryCode: "GA"},
		{pattern: regexp.MustCompile(`^242`), countryCode: "CG"},
		{pattern: regexp.MustCompile(`^243`), countryCode: "CD"},
		{pattern: regexp.MustCompile(`^244`), countryCode: "AO"},
		{pattern: regexp.MustCompile(`^245`), countryCode: "GW"},
		{pattern: regexp.MustCompile(`^246`), countryCode: "IO"},
		{pattern: regexp.MustCompile(`^247`), countryCode: "AC"},
		{pattern: regexp.MustCompile(`^248`), countryCode: "SC"},
		{pattern: regexp.MustCompile(`^249`), countryCode: "SD"},
		{pattern: regexp.MustCompile(`^250`), countryCode: "RW"},
		{pattern: regexp.MustCompile(`^251`), countryCode: "ET"},
		{pattern: regexp.MustCompile(`^252`), countryCode: "SO"},
		{pattern: regexp.MustCompile(`^253`), countryCode: "DJ"},
		{pattern: regexp.MustCompile(`^254`), countryCode: "KE"},
		{pattern: regexp.MustCompile(`^255`), countryCode: "TZ"},
		{pattern: regexp.MustCompile(`^256`), countryCode: "UG"},
		{pattern: regexp.MustCompile(`^257`), countryCode: "BI"},
		{pattern: regexp.MustCompile(`^258`), countryCode: "MZ"},
		{pattern: regexp.MustCompile(`^260`), countryCode: "ZM"},
		{pattern: regexp.MustCompile(`^261`), countryCode: "MG"},
		{pattern: regexp.MustCompile(`^262269`), countryCode: "YT"},
		{pattern: regexp.MustCompile(`^262`), countryCode: "RE"},
		{pattern: regexp.MustCompile(`^263`), countryCode: "ZW"},
		{pattern: regexp.MustCompile(`^264`), countryCode: "NA"},
		{pattern: regexp.MustCompile(`^265`), countryCode: "MW"},
		{pattern: regexp.MustCompile(`^266`), countryCode: "LS"},
		{pattern: regexp.MustCompile(`^267`), countryCode: "BW"},
		{pattern: regexp.MustCompile(`^268`), countryCode: "SZ"},
		{pattern: regexp.MustCompile(`^269`), countryCode: "KM"},
		{pattern: regexp.MustCompile(`^27`), countryCode: "ZA"},
		{pattern: regexp.MustCompile(`^290`), countryCode: "SH"},
		{pattern: regexp.MustCompile(`^291`), countryCode: "ER"},
		{pattern: regexp.MustCompile(`^297`), countryCode: "AW"},
		{pattern: regexp.MustCompile(`^298`), countryCode: "FO"},
		{pattern: regexp.MustCompile(`^299`), countryCode: "GL"},
	},
	'3': {
		{pattern: regexp.MustCompile(`^30`), countryCode: "GR"},
		{pattern: regexp.MustCompile(`^31`), countryCode: "NL"},
		{pattern: regexp.MustCompile(`^32`), countryCode: "BE"},
		{pattern: regexp.MustCompile(`^33`), countryCode: "FR"},
		{pattern: regexp.MustCompile(`^34`), countryCode: "ES"},
		{pattern: regexp.MustCompile(`^350`), countryCode: "GI"},
		{pattern: regexp.MustCompile(`^351`), countryCode: "PT"},
		{pattern: regexp.MustCompile(`^352`), countryCode: "LU"},
		{pattern: regexp.MustCompile(`^353`), countryCode: "IE"},
		{pattern: regexp.MustCompile(`^354`), countryCode: "IS"},
		{pattern: regexp.MustCompile(`^355`), countryCode: "AL"},
		{pattern: regexp.MustCompile(`^356`), countryCode: "MT"},
		{pattern: regexp.MustCompile(`^357`), countryCode: "CY"},
		// Åland Islands (to exclude from FI)
		{pattern: regexp.MustCompile(`^35818`), countryCode: "AX"},
		{pattern: regexp.MustCompile(`^358`), countryCode: "FI"},
		{pattern: regexp.MustCompile(`^359`), countryCode: "BG"},
		{pattern: regexp.MustCompile(`^36`), countryCode: "HU"},
		{pattern: regexp.MustCompile(`^370`), countryCode: "LT"},
		{pattern: regexp.MustCompile(`^371`), countryCode: "LV"},
		{pattern: regexp.MustCompile(`^372`), countryCode: "EE"},
		{pattern: regexp.MustCompile(`^373`), countryCode: "MD"},
		{pattern: regexp.MustCompile(`^374`), countryCode: "AM"},
		{pattern: regexp.MustCompile(`^375`), countryCode: "BY"},
		{pattern: regexp.MustCompile(`^376`), countryCode: "AD"},
		{pattern: regexp.MustCompile(`^377(44|45)`), countryCode: "XK"},
		{pattern: regexp.MustCompile(`^377`), countryCode: "MC"},
		{pattern: regexp.MustCompile(`^378`), countryCode: "SM"},
		{pattern: regexp.MustCompile(`^379`), countryCode: "VA"},
		{pattern: regexp.MustCompile(`^380`), countryCode: "UA"},
		{pattern: regexp.MustCompile(`^381(28|29|38|39)`), countryCode: "XK"},
		{pattern: regexp.MustCompile(`^381`), countryCode: "RS"},
		{pattern: regexp.MustCompile(`^382`), countryCode: "ME"},
		{pattern: regexp.MustCompile(`^383`), countryCode: "XK"},
		{pattern: regexp.MustCompile(`^385`), countryCode: "HR"},
		{pattern: regexp.MustCompile(`^386(43|49)`), countryCode: "XK"},
		{pattern: regexp.MustCompile(`^386`), countryCode: "SI"},
		{pattern: regexp.MustCompile(`^387`), countryCode: "BA"},
		{pattern: regexp.MustCompile(`^389`), countryCode: "MK"},
		{pattern: regexp.MustCompile(`^3906698`), countryCode: "VA"},
		{pattern: regexp.MustCompile(`^39`), countryCode: "IT"},
	},
	'4': {
		{pattern: regexp.MustCompile(`^40`), countryCode: "RO"},
		{pattern: regexp.MustCompile(`^41`), countryCode: "CH"},
		{pattern: regexp.MustCompile(`^420`), countryCode: "CZ"},
		{pattern: regexp.MustCompile(`^421`), countryCode: "SK"},
		{pattern: regexp.MustCompile(`^423`), countryCode: "LI"},
		{pattern: regexp.MustCompile(`^43`), countryCode: "AT"},
		// Guernsey (to exclude from GB)
		{pattern: regexp.MustCompile(`^44(148|7781|7839|7911)`), countryCode: "GG"},
		// Jersey (to exclude from GB)
		{pattern: regexp.MustCompile(`^44(153|7509|7797|7937|7700|7829)`), countryCode: "JE"},
		// Isle of Man
		{pattern: regexp.MustCompile(`^44(162|7624|7524|7924)`), countryCode: "IM"},
		{pattern: regexp.MustCompile(`^44`), countryCode: "GB"},
		{pattern: regexp.MustCompile(`^45`), countryCode: "DK"},
		{pattern: regexp.MustCompile(`^46`), countryCode: "SE"},
		{pattern: regexp.MustCompile(`^47`), countryCode: "NO"},
		{pattern: regexp.MustCompile(`^48`), countryCode: "PL"},
		{pattern: regexp.MustCompile(`^49`), countryCode: "DE"},
	},
	'5': {
		{pattern: regexp.MustCompile(`^500`), countryCode: "FK"},
		{pattern: regexp.MustCompile(`^501`), countryCode: "BZ"},
		{pattern: regexp.MustCompile(`^502`), countryCode: "GT"},
		{pattern: regexp.MustCompile(`^503`), countryCode: "SV"},
		{pattern: regexp.MustCompile(`^504`), countryCode: "HN"},
		{pattern: regexp.MustCompile(`^505`), countryCode: "NI"},
		{pattern: regexp.MustCompile(`^506`), countryCode: "CR"},
		{pattern: regexp.MustCompile(`^507`), countryCode: "PA"},
		{pattern: regexp.MustCompile(`^508`), countryCode: "PM"},
		{pattern: regexp.MustCompile(`^509`), countryCode: "HT"},
		{pattern: regexp.MustCompile(`^51`), countryCode: "PE"},
		{pattern: regexp.MustCompile(`^52`), countryCode: "MX"},
		{pattern: regexp.MustCompile(`^53`), countryCode: "CU"},
		{pattern: regexp.MustCompile(`^54`), countryCode: "AR"},
		{pattern: regexp.MustCompile(`^55`), countryCode: "BR"},
		{pattern: regexp.MustCompile(`^56`), countryCode: "CL"},
		{pattern: regexp.MustCompile(`^57`), countryCode: "CO"},
		{pattern: regexp.MustCompile(`^58`), countryCode: "VE"},
		{pattern: regexp.MustCompile(`^590(590(51|52|58|77|87)|690(10|22|27|66|77|87|88))`), countryCode: "MF"},
		{pattern: regexp.MustCompile(`^590590(27|29)`), countryCode: "BL"},
		{pattern: regexp.MustCompile(`^590`), countryCode: "GP"},
		{pattern: regexp.MustCompile(`^591`), countryCode: "BO"},
		{pattern: regexp.MustCompile(`^592`), countryCode: "GY"},
		{pattern: regexp.MustCompile(`^593`), countryCode: "EC"},
		{pattern: regexp.MustCompile(`^594`), countryCode: "GF"},
		{pattern: regexp.MustCompile(`^595`), countryCode: "PY"},
		{pattern: regexp.MustCompile(`^596`), countryCode: "MQ"},
		{pattern: regexp.MustCompile(`^597`), countryCode: "SR"},
		{pattern: regexp.MustCompile(`^598`), countryCode: "UY"},
		{pattern: regexp.MustCompile(`^5999`), countryCode: "CW"},
		{pattern: regexp.MustCompile(`^599`), countryCode: "BQ"},
	},
	'6': {
		{pattern: regexp.MustCompile(`^60`), countryCode: "MY"},
		{pattern: regexp.MustCompile(`^6189164`), countryCode: "CX"},
		{pattern: regexp.MustCompile(`^6189162`), countryCode: "CC"},
		{pattern: regexp.MustCompile(`^61`), countryCode: "AU"},
		{pattern: regexp.MustCompile(`^62`), countryCode: "ID"},
		{pattern: regexp.MustCompile(`^63`), countryCode: "PH"},
		{pattern: regexp.MustCompile(`^64`), countryCode: "NZ"},
		{pattern: regexp.MustCompile(`^65`), countryCode: "SG"},
		{pattern: regexp.MustCompile(`^66`), countryCode: "TH"},
		{pattern: regexp.MustCompile(`^670`), countryCode: "TL"},
		{pattern: regexp.MustCompile(`^6723`), countryCode: "NF"},
		{pattern: regexp.MustCompile(`^6721`), countryCode: "AQ"},
		{pattern: regexp.MustCompile(`^673`), countryCode: "BN"},
		{pattern: regexp.MustCompile(`^674`), countryCode: "NR"},
		{pattern: regexp.MustCompile(`^675`), countryCode: "PG"},
		{pattern: regexp.MustCompile(`^676`), countryCode: "TO"},
		{pattern: regexp.MustCompile(`^677`), countryCode: "SB"},
		{pattern: regexp.MustCompile(`^678`), countryCode: "VU"},
		{pattern: regexp.MustCompile(`^679`), countryCode: "FJ"},
		{pattern: regexp.MustCompile(`^680`), countryCode: "PW"},
		{pattern: regexp.MustCompile(`^681`), countryCode: "WF"},
		{pattern: regexp.MustCompile(`^682`), countryCode: "CK"},
		{pattern: regexp.MustCompile(`^683`), countryCode: "NU"},
		{pattern: regexp.MustCompile(`^685`), countryCode: "WS"},
		{pattern: regexp.MustCompile(`^686`), countryCode: "KI"},
		{pattern: regexp.MustCompile(`^687`), countryCode: "NC"},
		{pattern: regexp.MustCompile(`^688`), countryCode: "TV"},
		{pattern: regexp.MustCompile(`^689`), countryCode: "PF"},
		{pattern: regexp.MustCompile(`^690`), countryCode: "TK"},
		{pattern: regexp.MustCompile(`^691`), countryCode: "FM"},
		{pattern: regexp.MustCompile(`^692`), countryCode: "MH"},
	},
	'7': {
		{pattern: regexp.MustCompile(`^7(840|940)`), countryCode: "GE"},
		{pattern: regexp.MustCompile(`^7[3489]`), countryCode: "RU"},
		{pattern: regexp.MustCompile(`^7[67]`), countryCode: "KZ"},
	},
	'8': {
		{pattern: regexp.MustCompile(`^81`), countryCode: "JP"},
		{pattern: regexp.MustCompile(`^82`), countryCode: "KR"},
		{pattern: regexp.MustCompile(`^84`), countryCode: "VN"},
		{pattern: regexp.MustCompile(`^850`), countryCode: "KP"},
		{pattern: regexp.MustCompile(`^852`), countryCode: "HK"},
		{pattern: regexp.MustCompile(`^853`), countryCode: "MO"},
		{pattern: regexp.MustCompile(`^855`), countryCode: "KH"},
		{pattern: regexp.MustCompile(`^856`), countryCode: "LA"},
		{pattern: regexp.MustCompile(`^86`), countryCode: "CN"},
		{pattern: regexp.MustCompile(`^880`), countryCode: "BD"},
		{pattern: regexp.MustCompile(`^886`), countryCode: "TW"},
	},
	'9': {
		{pattern: regexp.MustCompile(`^90`), countryCode: "TR"},
		{pattern: regexp.MustCompile(`^91`), countryCode: "IN"},
		{pattern: regexp.MustCompile(`^92`), countryCode: "PK"},
		{pattern: regexp.MustCompile(`^93`), countryCode: "AF"},
		{pattern: regexp.MustCompile(`^94`), countryCode: "LK"},
		{pattern: regexp.MustCompile(`^95`), countryCode: "MM"},
		{pattern: regexp.MustCompile(`^960`), countryCode: "MV"},
		{pattern: regexp.MustCompile(`^961`), countryCode: "LB"},
		{pattern: regexp.MustCompile(`^962`), countryCode: "JO"},
		{pattern: regexp.MustCompile(`^963`), countryCode: "SY"},
		{pattern: regexp.MustCompile(`^964`), countryCode: "IQ"},
		{pattern: regexp.MustCompile(`^965`), countryCode: "KW"},
		{pattern: regexp.MustCompile(`^966`), countryCode: "SA"},
		{pattern: regexp.MustCompile(`^967`), countryCode: "YE"},
		{pattern: regexp.MustCompile(`^968`), countryCode: "OM"},
		{pattern: regexp.MustCompile(`^970`), countryCode: "PS"},
		{pattern: regexp.MustCompile(`^971`), countryCode: "AE"},
		{pattern: regexp.MustCompile(`^972`), countryCode: "IL"},
		{pattern: regexp.MustCompile(`^973`), countryCode: "BH"},
		{pattern: regexp.MustCompile(`^974`), countryCode: "QA"},
		{pattern: regexp.MustCompile(`^975`), countryCode: "BT"},
		{pattern: regexp.MustCompile(`^976`), countryCode: "MN"},
		{pattern: regexp.MustCompile(`^977`), countryCode: "NP"},
		{pattern: regexp.MustCompile(`^98`), countryCode: "IR"},
		{pattern: regexp.MustCompile(`^992`), countryCode: "TJ"},
		{pattern: regexp.MustCompile(`^993`), countryCode: "TM"},
		{pattern: regexp.MustCompile(`^994`), countryCode: "AZ"},
		{pattern: regexp.MustCompile(`^995`), countryCode: "GE"},
		{pattern: regexp.MustCompile(`^996`), countryCode: "KG"},
		{pattern: regexp.MustCompile(`^998`), countryCode: "UZ"},
	},
}

// callingCodeMatcher is one entry in a country's ordered calling-code
// exception table. countryCode can differ from the table key because some
// exception zones have phone service from more than one country.
type callingCodeMatcher struct {
	pattern     *regexp.Regexp
	countryCode string
	name        string
	definitive  bool
}

// callingCodeExceptions is keyed by the country resolved from
// callingCodeMapping.
var callingCodeExceptions = map[string][]callingCodeMatcher{
	"AT": {
		{pattern: regexp.MustCompile(`^435676`), countryCode: "AT", name: "Jungholz", definitive: true},
		{pattern: regexp.MustCompile(`^435517`), countryCode: "AT", name: "Mittelberg", definitive: false},
	},
	"CH": {
		{pattern: regexp.MustCompile(`^4152`), countryCode: "DE", name: "Büsingen am Hochrhein", definitive: false},
		{pattern: regexp.MustCompile(`^4191`), countryCode: "IT", name: "Campione d'Italia", definitive: false},
	},
	"DE": {
		{pattern: regexp.MustCompile(`^494725`), countryCode: "DE", name: "Heligoland", definitive: true},
		{pattern: regexp.MustCompile(`^497734`), countryCode: "DE", name: "Büsingen am Hochrhein", definitive: false},
	},
	"ES": {
		{pattern: regexp.MustCompile(`^34(822|828|922|928)`), countryCode: "ES", name: "Canary Islands", definitive: true},
		{pattern: regexp.MustCompile(`^34956`), countryCode: "ES", name: "Ceuta", definitive: false},
		{pattern: regexp.MustCompile(`^34952`), countryCode: "ES", name: "Melilla", definitive: false},
	},
	"GR": {
		// http://www.mountathosinfos.gr/pages/agionoros/telefonbook.en.html
		// http://www.athosfriends.org/PilgrimsGuide/information/#telephones
		{pattern: regexp.MustCompile(`^3023770(23|41488|41462|22586|24039|94098)`), countryCode: "GR", name: "Mount Athos", definitive: true},
	},
	"IT": {
		{pattern: regexp.MustCompile(`^390342`), countryCode: "IT", name: "Livigno", definitive: false},
	},
	"PT": {
		{pattern: regexp.MustCompile(`^35129[256]`), countryCode: "PT", name: "Azores", definitive: true},
		{pattern: regexp.MustCompile(`^351291`), countryCode: "PT", name: "Madeira", definitive: true},
	},
}
