package usecase

import (
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Apalugobang/tempo-dex/domain"
	"github.com/Apalugobang/tempo-dex/domain/json"
)

// TokenList is the JSON structure of a token list.
type TokenList struct {
	Name   string `json:"name"`
	Tokens []struct {
		// Key is the registry key. Defaults to the symbol.
		Key      string `json:"key"`
		Address  string `json:"address"`
		Symbol   string `json:"symbol"`
		Decimals int    `json:"decimals"`
		Logo     string `json:"logo"`
	} `json:"tokens"`
}

const tokenListHTTPTimeout = 10 * time.Second

var tokenListHTTPClient = &http.Client{
	Timeout: tokenListHTTPTimeout,
}

// GetTokensFromTokenListFunc is a GetTokensFromTokenList function signature.
type GetTokensFromTokenListFunc func(source string) ([]domain.TokenEntry, string, error)

// GetTokensFromTokenList reads the token list from a file path or an http(s) URL.
// It returns the tokens in list order together with the md5 hash of the raw content.
func GetTokensFromTokenList(source string) ([]domain.TokenEntry, string, error) {
	data, err := readTokenList(source)
	if err != nil {
		return nil, "", err
	}

	tokens, err := ParseTokenList(data)
	if err != nil {
		return nil, "", err
	}

	return tokens, fmt.Sprintf("%x", md5.Sum(data)), nil
}

// ParseTokenList parses and validates the raw JSON token list.
func ParseTokenList(data []byte) ([]domain.TokenEntry, error) {
	var tokenList TokenList
	if err := json.Unmarshal(data, &tokenList); err != nil {
		return nil, err
	}

	if len(tokenList.Tokens) == 0 {
		return nil, TokenListEmptyError{Name: tokenList.Name}
	}

	entries := make([]domain.TokenEntry, 0, len(tokenList.Tokens))
	seenKeys := make(map[string]struct{}, len(tokenList.Tokens))

	for i, token := range tokenList.Tokens {
		key := token.Key
		if key == "" {
			key = token.Symbol
		}

		if key == "" {
			return nil, TokenListEntryInvalidError{Index: i, Reason: "symbol is required"}
		}

		if !domain.IsTokenAddressFormat(token.Address) {
			return nil, TokenListEntryInvalidError{Index: i, Reason: fmt.Sprintf("address (%s) is malformed", token.Address)}
		}

		if token.Decimals < 0 {
			return nil, TokenListEntryInvalidError{Index: i, Reason: "decimals must not be negative"}
		}

		if _, ok := seenKeys[key]; ok {
			return nil, TokenListEntryInvalidError{Index: i, Reason: fmt.Sprintf("duplicate key (%s)", key)}
		}
		seenKeys[key] = struct{}{}

		entries = append(entries, domain.TokenEntry{
			Key: key,
			Token: domain.Token{
				Address:  token.Address,
				Symbol:   token.Symbol,
				Decimals: token.Decimals,
				Logo:     token.Logo,
			},
		})
	}

	return entries, nil
}

func readTokenList(source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	response, err := tokenListHTTPClient.Get(source)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, TokenListFetchStatusError{Source: source, StatusCode: response.StatusCode}
	}

	return io.ReadAll(response.Body)
}

// LoadTokensFunc is the callback receiving the loaded tokens.
type LoadTokensFunc func(entries []domain.TokenEntry)

// TokenListLoader is loader of tokens from a token list passing results to the loadTokens function.
type TokenListLoader interface {
	// FetchAndUpdateTokens fetches tokens from the token list and loads by calling loadTokens if there are changes.
	FetchAndUpdateTokens(loadTokens LoadTokensFunc) error
}

// TokenListFetcher is an implementation of TokenListLoader that fetches tokens from a file or URL.
type TokenListFetcher struct {
	source                 string
	getTokensFromTokenList GetTokensFromTokenListFunc
	lastFetchHash          string
}

var _ TokenListLoader = &TokenListFetcher{}

// NewTokenListFetcher creates a new instance of TokenListFetcher.
func NewTokenListFetcher(source string, getTokensFromTokenList GetTokensFromTokenListFunc) *TokenListFetcher {
	return &TokenListFetcher{
		source:                 source,
		getTokensFromTokenList: getTokensFromTokenList,
	}
}

// FetchAndUpdateTokens fetches tokens from the token list and loads by calling loadTokens function.
// In case there were no changes since last fetch, it does not call loadTokens.
func (f *TokenListFetcher) FetchAndUpdateTokens(loadTokens LoadTokensFunc) error {
	tokens, hash, err := f.getTokensFromTokenList(f.source)
	if err != nil {
		domain.TempoTokenListFetchErrorCounter.Inc()
		return err
	}

	if f.lastFetchHash != hash {
		loadTokens(tokens)
		f.lastFetchHash = hash
	}

	return nil
}
