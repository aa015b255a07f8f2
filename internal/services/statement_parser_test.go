package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StatementParserTestSuite struct {
	suite.Suite
	parser StatementParserInterface
}

func TestStatementParserSuite(t *testing.T) {
	suite.Run(t, new(StatementParserTestSuite))
}

func (s *StatementParserTestSuite) SetupTest() {
	s.parser = NewStatementParser()
}

func (s *StatementParserTestSuite) TestParse_SimpleStatement() {
	raw := []byte("Date,Description,Debit,Credit\n" +
		"01/02/2024,UPI/DR/123/zomato/UTIB/zomato.payu,450.00,\n" +
		"02/02/2024,SALARY CREDIT,,55000.00\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("UPI/DR/123/zomato/UTIB/zomato.payu", rows[0]["description"])
	s.Equal("450.00", rows[0]["debit"])
	s.Equal("55000.00", rows[1]["credit"])
}

func (s *StatementParserTestSuite) TestParse_DiscardsPreamble() {
	raw := []byte("HDFC BANK LTD\n" +
		"Statement for account XXXX1234\n" +
		"Period: 01/02/2024 to 29/02/2024\n" +
		"\n" +
		"Txn Date,Narration,Withdrawal Amt,Deposit Amt\n" +
		"01/02/2024,POS PURCHASE,450.00,\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("POS PURCHASE", rows[0]["narration"])
	s.Equal("450.00", rows[0]["withdrawal_amt"])
}

func (s *StatementParserTestSuite) TestParse_StripsBOM() {
	raw := []byte("\uFEFFDate,Description,Amount\n01/02/2024,TEST,100\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("100", rows[0]["amount"])
}

func (s *StatementParserTestSuite) TestParse_WindowsLineEndings() {
	raw := []byte("Date,Description,Amount\r\n01/02/2024,TEST,100\r\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *StatementParserTestSuite) TestParse_HeaderNotFound() {
	raw := []byte("just some unrelated text\nwith no tabular structure\n")

	rows, err := s.parser.Parse(raw)

	s.ErrorIs(err, ErrHeaderNotFound)
	s.Nil(rows)
}

func (s *StatementParserTestSuite) TestParse_EmptyFile() {
	for _, raw := range [][]byte{[]byte(""), []byte("   \n \n")} {
		rows, err := s.parser.Parse(raw)
		s.ErrorIs(err, ErrEmptyStatement)
		s.Nil(rows)
	}
}

func (s *StatementParserTestSuite) TestParse_HeaderOnly() {
	raw := []byte("Date,Description,Debit,Credit\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *StatementParserTestSuite) TestParse_SkipsBlankLinesInsideTable() {
	raw := []byte("Date,Description,Amount\n" +
		"01/02/2024,FIRST,100\n" +
		"\n" +
		"02/02/2024,SECOND,200\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("SECOND", rows[1]["description"])
}

func (s *StatementParserTestSuite) TestParse_RaggedRows() {
	raw := []byte("Date,Description,Debit,Credit\n" +
		"01/02/2024,SHORT ROW,100\n" +
		"02/02/2024,FULL ROW,200,\n")

	rows, err := s.parser.Parse(raw)

	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("100", rows[0]["debit"])
	_, hasCredit := rows[0]["credit"]
	s.False(hasCredit)
}

func (s *StatementParserTestSuite) TestFindHeaderLine_RequiresTwoKeywords() {
	lines := []string{
		"account statement",
		"generated on date 01/02/2024",
		"Date,Description,Amount",
	}

	// "date" alone on line 1 is not enough; line 2 has date, description
	// and amount
	s.Equal(2, findHeaderLine(lines))
}

func (s *StatementParserTestSuite) TestNormalizeColumnKey() {
	testCases := []struct {
		header   string
		expected string
	}{
		{"Txn Date", "txn_date"},
		{"Withdrawal Amt.", "withdrawal_amt"},
		{"  Debit   Amount  ", "debit_amount"},
		{"Chq./Ref.No.", "chqrefno"},
		{"DESCRIPTION", "description"},
		{"Value__Date", "value_date"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, normalizeColumnKey(tc.header), tc.header)
	}
}
