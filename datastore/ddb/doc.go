/*
Package ddb provides a DynamoDB implementation of datastore.Backend.

All keys live in one table whose partition key is the binary attribute "PK".
Values are stored in the binary attribute "V". Keys arrive already namespaced,
so the alias and owner indexes share the table without colliding.

Transactions:
Atomic buffers writes in a datastore.Overlay and commits them with a single
TransactWriteItems call. Every write is conditioned on what the callback read
for that key:

	attribute_not_exists(PK)   key was observed absent
	V = :observed              key was observed with a value

A conflicting writer cancels the transaction and Atomic returns an error
matching errors.ErrConditionFailed. Nothing is written in that case.

View re-reads the keys its callback touched with TransactGetItems and fails
with errors.ErrConditionFailed if any of them moved underneath it.

Table creation is left to the operator:

	aws dynamodb create-table --table-name aliases \
	    --attribute-definitions AttributeName=PK,AttributeType=B \
	    --key-schema AttributeName=PK,KeyType=HASH \
	    --billing-mode PAY_PER_REQUEST
*/
package ddb
