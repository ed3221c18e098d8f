package locale

import "testing"

// TestFrenchNormalize reproduces the literal normalize() vectors from the
// original lexer test suite. Each case exercises a different corner of the
// rewrite cascade; keep them verbatim, they double as regression coverage
// for the cascade ordering.
func TestFrenchNormalize(t *testing.T) {
	fr := NewFrench()

	cases := []struct {
		in, want string
	}{
		{
			"J'ai perdu mes codes d'acc à mon site",
			"J’ai perdu mes codes d’acc à mon site",
		},
		{
			"auriez vous une solution a me proposer svp ?",
			"auriez vous une solution a me proposer svp ?",
		},
		{
			"BONJOUR JE VOUDRAIS SOUSCRIRE POUR UNE MISE EN PLACE AVANT LE " +
				"01/01/19 MERCI D'AVANCE",
			"BONJOUR JE VOUDRAIS SOUSCRIRE POUR UNE MISE EN PLACE AVANT LE " +
				"01/01/19 MERCI D’AVANCE",
		},
		{
			"J'ai installé le plugin e-transaction sur woocommerce " +
				`(dont mon client à souscris "ANABISHOP" ) mais j'obtiens un ` +
				"message erreur.",
			"J’ai installé le plugin e-transaction sur woocommerce " +
				`( dont mon client à souscris "ANABISHOP" ) mais j’obtiens un ` +
				"message erreur .",
		},
		{
			"Encore aujourd’hui, tous les techniciens sont en réunion… " +
				"cela fait 20 minutes que je suis en attente téléphonique !",
			"Encore aujourd’hui , tous les techniciens sont en réunion … " +
				"cela fait 20 minutes que je suis en attente téléphonique !",
		},
		{
			"Encore aujourd’hui, tous les techniciens sont en réunion...",
			"Encore aujourd’hui , tous les techniciens sont en réunion …",
		},
		{
			"Nous estimons que nous aurons envrion 30 000€ de chiffre " +
				"d'affaire annuel par ce bais ainsi que plus de 2000 " +
				"transactions annuels.",
			"Nous estimons que nous aurons envrion 30000€ de chiffre " +
				"d’affaire annuel par ce bais ainsi que plus de 2000 " +
				"transactions annuels .",
		},
		{
			"Mon numéro est le 06.11.78.04.60",
			"Mon numéro est le 0611780460",
		},
		{
			"J'ai payé 42. 10 de plus qu'annoncé.",
			"J’ai payé 42 . 10 de plus qu’annoncé .",
		},
		{
			"Cdt, M.L. Blidon",
			"Cdt , M. L. Blidon",
		},
		{
			"de pâtisserie ( création depuis 2017).",
			"de pâtisserie ( création depuis 2017 ) .",
		},
		{
			"Votre produit est il adapté à cet effet?",
			"Votre produit est il adapté à cet effet ?",
		},
		{
			"Accès refusé !",
			"Accès refusé !",
		},
		{
			"J'ai découvert votre offre : je vends de produits",
			"J’ai découvert votre offre : je vends de produits",
		},
		{
			"Je souhaite augmenter ma notoriété ,je souhaite creer un site internet",
			"Je souhaite augmenter ma notoriété , je souhaite creer un site internet",
		},
		{
			"vetements 100% basques.",
			"vetements 100% basques .",
		},
		{
			"vetements 100 % basques.",
			"vetements 100% basques .",
		},
	}

	for _, c := range cases {
		if got := fr.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) =\n  %q\nwant\n  %q", c.in, got, c.want)
		}
	}
}

func TestFrenchTokenizeWords(t *testing.T) {
	fr := NewFrench()
	norm := fr.Normalize("Accès refusé !")

	got := fr.Split(norm)
	want := []string{"Accès", "refusé", "!"}

	if len(got) != len(want) {
		t.Fatalf("Split(%q) = %v, want %v", norm, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Split(%q)[%d] = %q, want %q", norm, i, got[i], want[i])
		}
	}
}

func TestFrenchIsWord(t *testing.T) {
	fr := NewFrench()

	words := []string{"Accès", "refusé", "bonjour", "d’acc", "e-transaction"}
	for _, w := range words {
		if !fr.IsWord(w) {
			t.Errorf("IsWord(%q) = false, want true", w)
		}
	}

	notWords := []string{"!", "?", ".", "…"}
	for _, w := range notWords {
		if fr.IsWord(w) {
			t.Errorf("IsWord(%q) = true, want false", w)
		}
	}
}

func TestFrenchDictionaryName(t *testing.T) {
	fr := NewFrench()
	if got, want := fr.DictionaryName(), "fr_FR"; got != want {
		t.Errorf("DictionaryName() = %q, want %q", got, want)
	}
}
